package recordview_test

import (
	"context"
	"strings"
	"testing"

	recordview "github.com/goliatone/go-recordview"
	"github.com/goliatone/go-recordview/pkg/record"
)

type stubBackend struct {
	raw record.RawRecord
}

func (s stubBackend) FetchRecord(context.Context, string, string) (record.RawRecord, error) {
	return s.raw, nil
}

func TestViewConvenienceEntry(t *testing.T) {
	t.Parallel()

	backend := stubBackend{raw: record.RawRecord{
		"firstName": "Ana",
		"visaType":  "Tourist Visa",
	}}

	view, err := recordview.View(context.Background(), backend, "visa", "42")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.RecordID != "42" {
		t.Errorf("RecordID = %q", view.RecordID)
	}
	if _, ok := view.SectionByCategory("Personal Profile"); !ok {
		t.Error("personal section missing")
	}
}

func TestRenderHTMLConvenienceEntry(t *testing.T) {
	t.Parallel()

	backend := stubBackend{raw: record.RawRecord{
		"firstName": "Ana",
	}}

	html, err := recordview.RenderHTML(context.Background(), backend, "visa", "42")
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	page := string(html)
	if !strings.Contains(page, "<!DOCTYPE html>") || !strings.Contains(page, "Ana") {
		t.Errorf("unexpected page output")
	}
}
