package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-recordview/pkg/model"
	"github.com/goliatone/go-recordview/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }

func (s stubRenderer) Render(context.Context, model.ViewModel, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := render.NewRegistry()
	if err := registry.Register(stubRenderer{name: "text"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	renderer, err := registry.Get("text")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if renderer.Name() != "text" {
		t.Errorf("Name = %q, want text", renderer.Name())
	}

	if !registry.Has("text") {
		t.Error("Has(text) = false")
	}
	if registry.Has("html") {
		t.Error("Has(html) = true for unregistered renderer")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	t.Parallel()

	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "text"})
	if err := registry.Register(stubRenderer{name: "text"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistryRejectsNilAndUnnamed(t *testing.T) {
	t.Parallel()

	registry := render.NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected error for unnamed renderer")
	}
}

func TestRegistryListSorted(t *testing.T) {
	t.Parallel()

	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "text"})
	registry.MustRegister(stubRenderer{name: "html"})

	want := []string{"html", "text"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}
