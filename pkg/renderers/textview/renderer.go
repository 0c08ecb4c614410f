// Package textview renders resolved record views as plain text for terminal
// sessions and logs.
package textview

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-recordview/pkg/model"
	"github.com/goliatone/go-recordview/pkg/render"
)

const indent = "  "

type Option func(*Renderer)

// WithWidth overrides the label column width.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.labelWidth = width
		}
	}
}

type Renderer struct {
	labelWidth int
}

// New constructs a plain-text renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{labelWidth: 28}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, view model.ViewModel, options render.RenderOptions) ([]byte, error) {
	render.ApplySections(&view, options.Sections)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Record %s (%s)\n", view.RecordID, view.RecordType)

	for _, section := range view.Sections {
		fmt.Fprintf(&buf, "\n%s\n%s\n", section.Category, strings.Repeat("-", len(section.Category)))
		for _, field := range section.Fields {
			if options.HideEmptyValues && field.Value == "" {
				continue
			}
			label := field.Label
			if field.Mandatory {
				label += " *"
			}
			fmt.Fprintf(&buf, "%s%-*s %s\n", indent, r.labelWidth, label+":", field.Value)
		}
	}

	if len(view.Checklist) > 0 {
		fmt.Fprintf(&buf, "\nChecklist\n---------\n")
		for _, entry := range view.Checklist {
			fmt.Fprintf(&buf, "%s[%s] %s\n", indent, statusGlyph(entry.Status), entry.Label)
		}
	}

	if len(view.Documents) > 0 {
		fmt.Fprintf(&buf, "\nDocuments\n---------\n")
		for _, group := range view.Documents {
			fmt.Fprintf(&buf, "%s%s\n", indent, group.Category)
			if len(group.Files) == 0 {
				fmt.Fprintf(&buf, "%s%s(none)\n", indent, indent)
				continue
			}
			for _, file := range group.Files {
				fmt.Fprintf(&buf, "%s%s%s (%s) %s\n", indent, indent, file.Name, file.Source, file.URL)
			}
		}
	}

	return buf.Bytes(), nil
}

func statusGlyph(status string) string {
	switch status {
	case "completed":
		return "x"
	case "missing":
		return "!"
	default:
		return " "
	}
}

var _ render.Renderer = (*Renderer)(nil)
