// Package render defines the renderer contract and the registry the viewer
// dispatches through. Renderers consume a fully resolved view model; they
// never touch raw records.
package render

import (
	"context"

	"github.com/goliatone/go-recordview/pkg/model"
)

// Renderer converts a resolved view model into a byte representation
// (HTML, plain text, JSON, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view model.ViewModel, options RenderOptions) ([]byte, error)
}
