// Package htmlview renders resolved record views as a standalone HTML page
// using pongo2 templates. Record values are sanitized before they reach the
// template; the page is read-only chrome around them.
package htmlview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-recordview/pkg/model"
	"github.com/goliatone/go-recordview/pkg/render"
)

const recordTemplate = "templates/record.html"

type Option func(*config)

type config struct {
	templateFS fs.FS
	policy     *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithSanitizer overrides the bluemonday policy applied to record-supplied
// strings. The default strips all markup.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

type Renderer struct {
	mu        sync.Mutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	policy    *bluemonday.Policy
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		policy:     bluemonday.StrictPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	return &Renderer{
		set:       pongo2.NewSet("recordview-html", pongo2.NewFSLoader(cfg.templateFS)),
		templates: make(map[string]*pongo2.Template),
		policy:    cfg.policy,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, view model.ViewModel, options render.RenderOptions) ([]byte, error) {
	view = r.sanitizeView(view)
	render.ApplySections(&view, options.Sections)
	if options.HideEmptyValues {
		dropEmptyFields(&view)
	}

	data := map[string]any{"view": view}
	if options.Theme != nil {
		data["theme"] = themeContext(options.Theme)
	}

	viewContext, err := toContext(data)
	if err != nil {
		return nil, fmt.Errorf("htmlview: convert view data: %w", err)
	}

	tmpl, err := r.getTemplate(recordTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(viewContext, &buf); err != nil {
		return nil, fmt.Errorf("htmlview: execute template: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) getTemplate(path string) (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("htmlview: load template %q: %w", path, err)
	}
	r.templates[path] = tmpl
	return tmpl, nil
}

// themeContext resolves the pieces of a theme config that templates can
// consume: plain strings only, the asset resolver is applied here.
func themeContext(theme *render.ThemeConfig) map[string]any {
	out := map[string]any{
		"name":    theme.Theme,
		"variant": theme.Variant,
		"cssVars": theme.CSSVars,
	}
	if theme.AssetURL != nil {
		out["stylesheet"] = theme.AssetURL("stylesheet")
	}
	return out
}

func dropEmptyFields(view *model.ViewModel) {
	sections := make([]model.Section, 0, len(view.Sections))
	for _, section := range view.Sections {
		fields := make([]model.ResolvedField, 0, len(section.Fields))
		for _, field := range section.Fields {
			if field.Value == "" {
				continue
			}
			fields = append(fields, field)
		}
		if len(fields) == 0 {
			continue
		}
		section.Fields = fields
		sections = append(sections, section)
	}
	if len(sections) == 0 {
		sections = nil
	}
	view.Sections = sections
}

// toContext round-trips through JSON so templates address keys by their
// serialized names rather than Go field names.
func toContext(data map[string]any) (pongo2.Context, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return pongo2.Context(out), nil
}

var _ render.Renderer = (*Renderer)(nil)
