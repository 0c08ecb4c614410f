package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-recordview/pkg/client"
	"github.com/goliatone/go-recordview/pkg/render"
	"github.com/goliatone/go-recordview/pkg/viewer"
)

func main() {
	baseURL := flag.String("base-url", os.Getenv("RECORDVIEW_BASE_URL"), "backend base URL")
	recordType := flag.String("type", "", "record type (visa or consultation)")
	recordID := flag.String("record", "", "record id to view")
	rendererName := flag.String("renderer", "text", "renderer to use (text or html)")
	sections := flag.String("sections", "", "comma-separated category filter")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if *baseURL == "" {
		log.Fatal("backend base URL is required (-base-url or RECORDVIEW_BASE_URL)")
	}

	if err := promptMissing(recordType, recordID); err != nil {
		log.Fatalf("prompt: %v", err)
	}

	backend, err := client.New(*baseURL)
	if err != nil {
		log.Fatalf("configure client: %v", err)
	}

	v := viewer.New(
		viewer.WithClient(backend),
		viewer.WithLister(backend),
		viewer.WithLogf(log.Printf),
	)

	out, err := v.Render(context.Background(), viewer.Request{
		RecordType:    *recordType,
		RecordID:      *recordID,
		Renderer:      *rendererName,
		RenderOptions: render.RenderOptions{Sections: splitSections(*sections)},
	})
	if err != nil {
		log.Fatalf("Failed to render record: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Record written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

func promptMissing(recordType, recordID *string) error {
	if *recordType == "" {
		prompt := &survey.Select{
			Message: "Record type:",
			Options: []string{client.RecordTypeVisa, client.RecordTypeConsultation},
		}
		if err := survey.AskOne(prompt, recordType); err != nil {
			return err
		}
	}
	if *recordID == "" {
		prompt := &survey.Input{Message: "Record id:"}
		if err := survey.AskOne(prompt, recordID, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}
	return nil
}

func splitSections(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
