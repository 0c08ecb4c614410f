// Package recordview is a read-only viewer for client records: it fetches a
// raw record from the backend, normalizes and partitions it, resolves the
// question catalog into labeled sections, aggregates documents, evaluates the
// submission checklist, and renders the result.
package recordview

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-recordview/pkg/model"
	"github.com/goliatone/go-recordview/pkg/render"
	"github.com/goliatone/go-recordview/pkg/viewer"
)

// Request describes the inputs required to view one record.
type Request = viewer.Request

// RenderOptions describes per-request render instructions.
type RenderOptions = render.RenderOptions

// ViewModel is the fully resolved view of one record.
type ViewModel = model.ViewModel

// RecordFetcher retrieves one raw record from the backend.
type RecordFetcher = viewer.RecordFetcher

// NewViewer exposes the viewer constructor from the top-level module.
func NewViewer(options ...viewer.Option) *viewer.Viewer {
	return viewer.New(options...)
}

// View builds the resolved view model for one record. It is the simplest
// entry point for callers that want the structured data rather than bytes.
func View(ctx context.Context, fetcher RecordFetcher, recordType, recordID string, options ...viewer.Option) (ViewModel, error) {
	v := viewer.New(append([]viewer.Option{viewer.WithClient(fetcher)}, options...)...)
	return v.View(ctx, Request{RecordType: recordType, RecordID: recordID})
}

// RenderHTML builds and renders the record view as a standalone HTML page.
func RenderHTML(ctx context.Context, fetcher RecordFetcher, recordType, recordID string, options ...viewer.Option) ([]byte, error) {
	v := viewer.New(append([]viewer.Option{viewer.WithClient(fetcher)}, options...)...)
	return v.Render(ctx, Request{RecordType: recordType, RecordID: recordID, Renderer: "html"})
}

// WithClient injects the backend record fetcher.
func WithClient(fetcher RecordFetcher) viewer.Option {
	return viewer.WithClient(fetcher)
}

// WithThemeSelector passes a go-theme selector through to the viewer so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) viewer.Option {
	return viewer.WithThemeSelector(selector)
}
