// Package viewer coordinates the full pipeline from raw backend record to
// rendered output: normalize, partition, resolve, aggregate documents,
// evaluate the checklist, then dispatch to a renderer.
package viewer

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-recordview/pkg/catalog"
	"github.com/goliatone/go-recordview/pkg/checklist"
	"github.com/goliatone/go-recordview/pkg/documents"
	"github.com/goliatone/go-recordview/pkg/model"
	"github.com/goliatone/go-recordview/pkg/record"
	"github.com/goliatone/go-recordview/pkg/render"
	"github.com/goliatone/go-recordview/pkg/renderers/htmlview"
	"github.com/goliatone/go-recordview/pkg/renderers/textview"
	"github.com/goliatone/go-recordview/pkg/resolve"
	"github.com/goliatone/go-recordview/pkg/visibility"
)

const defaultRendererName = "html"

// RecordFetcher retrieves one raw record from the backend.
type RecordFetcher interface {
	FetchRecord(ctx context.Context, recordType, id string) (record.RawRecord, error)
}

// Option customises the viewer configuration.
type Option func(*Viewer)

// WithClient injects the backend record fetcher.
func WithClient(fetcher RecordFetcher) Option {
	return func(v *Viewer) {
		v.fetcher = fetcher
	}
}

// WithCatalog overrides the question catalog.
func WithCatalog(c catalog.Catalog) Option {
	return func(v *Viewer) {
		v.catalog = c
	}
}

// WithEvaluator injects a custom visibility evaluator shared by the field
// resolver and the checklist.
func WithEvaluator(e visibility.Evaluator) Option {
	return func(v *Viewer) {
		v.evaluator = e
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(v *Viewer) {
		v.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(v *Viewer) {
		v.defaultRenderer = name
	}
}

// WithLister injects the document-listing collaborator. Without one only
// inline-field documents are served.
func WithLister(lister documents.Lister) Option {
	return func(v *Viewer) {
		v.lister = lister
	}
}

// WithBaseDir overrides the client-upload base directory convention.
func WithBaseDir(dir string) Option {
	return func(v *Viewer) {
		v.baseDir = dir
	}
}

// WithLogf installs a diagnostic hook for degraded document aggregation.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(v *Viewer) {
		v.logf = logf
	}
}

// WithChecklistItems replaces the default checklist.
func WithChecklistItems(items []checklist.Item) Option {
	return func(v *Viewer) {
		v.checklistItems = items
	}
}

// WithThemeSelector passes a go-theme selector through so theme/variant
// choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(v *Viewer) {
		v.themeSelector = selector
	}
}

// WithThemeFallbacks supplies fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(v *Viewer) {
		v.themeFallbacks = fallbacks
	}
}

// Viewer is the read-only record pipeline. Missing dependencies are
// initialised with the built-in implementations so callers can start with a
// single constructor call.
type Viewer struct {
	fetcher         RecordFetcher
	catalog         catalog.Catalog
	evaluator       visibility.Evaluator
	resolver        *resolve.Resolver
	aggregator      *documents.Aggregator
	checker         *checklist.Evaluator
	registry        *render.Registry
	defaultRenderer string
	lister          documents.Lister
	baseDir         string
	logf            func(format string, args ...any)
	checklistItems  []checklist.Item
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	initialiseErr   error
}

// New constructs a Viewer applying any provided options.
func New(options ...Option) *Viewer {
	v := &Viewer{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	v.applyDefaults()
	return v
}

func (v *Viewer) applyDefaults() {
	if v.catalog == nil {
		v.catalog = catalog.Default()
	}

	resolveOptions := []resolve.Option{resolve.WithCatalog(v.catalog)}
	if v.evaluator != nil {
		resolveOptions = append(resolveOptions, resolve.WithEvaluator(v.evaluator))
	}
	v.resolver = resolve.New(resolveOptions...)

	var aggregateOptions []documents.Option
	if v.lister != nil {
		aggregateOptions = append(aggregateOptions, documents.WithLister(v.lister))
	}
	if v.baseDir != "" {
		aggregateOptions = append(aggregateOptions, documents.WithBaseDir(v.baseDir))
	}
	if v.logf != nil {
		aggregateOptions = append(aggregateOptions, documents.WithLogf(v.logf))
	}
	v.aggregator = documents.NewAggregator(aggregateOptions...)

	var checkOptions []checklist.Option
	if len(v.checklistItems) > 0 {
		checkOptions = append(checkOptions, checklist.WithItems(v.checklistItems))
	}
	if v.evaluator != nil {
		checkOptions = append(checkOptions, checklist.WithEvaluator(v.evaluator))
	}
	v.checker = checklist.New(checkOptions...)

	if v.registry == nil {
		v.registry = render.NewRegistry()

		html, err := htmlview.New()
		if err != nil {
			v.initialiseErr = fmt.Errorf("viewer: default html renderer: %w", err)
			return
		}
		v.registry.MustRegister(html)

		text, err := textview.New()
		if err != nil {
			v.initialiseErr = fmt.Errorf("viewer: default text renderer: %w", err)
			return
		}
		v.registry.MustRegister(text)
	}
}

// Request describes the inputs required to view one record.
type Request struct {
	// RecordType selects the backend resource family ("visa" or
	// "consultation").
	RecordType string

	// RecordID identifies the record.
	RecordID string

	// Renderer names the renderer to use. If empty, the viewer falls back to
	// the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme when a selector is configured.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions such as section filters.
	// The theme slot is populated by the viewer when a selector resolves.
	RenderOptions render.RenderOptions
}

// View executes the pipeline up to the view model: fetch, normalize,
// partition, resolve fields into sections, aggregate documents per category,
// and evaluate the checklist. The view model is rebuilt from scratch on every
// call.
func (v *Viewer) View(ctx context.Context, req Request) (model.ViewModel, error) {
	if ctx == nil {
		return model.ViewModel{}, errors.New("viewer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.ViewModel{}, err
	}
	if v.initialiseErr != nil {
		return model.ViewModel{}, v.initialiseErr
	}
	if v.fetcher == nil {
		return model.ViewModel{}, errors.New("viewer: record fetcher is required")
	}
	if req.RecordType == "" || req.RecordID == "" {
		return model.ViewModel{}, errors.New("viewer: record type and id are required")
	}

	raw, err := v.fetcher.FetchRecord(ctx, req.RecordType, req.RecordID)
	if err != nil {
		return model.ViewModel{}, fmt.Errorf("viewer: fetch record: %w", err)
	}

	rec := record.Partition(record.Normalize(raw))

	view := model.ViewModel{
		RecordID:   req.RecordID,
		RecordType: req.RecordType,
		Sections:   v.resolver.Sections(rec),
	}

	files := make(map[string][]documents.FileReference)
	for _, question := range v.catalog.FileQuestions() {
		category := question.DocumentCategory
		if category == "" {
			continue
		}
		refs := v.aggregator.Aggregate(ctx, documents.ListRequest{
			RecordID:   req.RecordID,
			RecordType: req.RecordType,
			Category:   category,
		}, rec)
		files[category] = refs
		view.Documents = append(view.Documents, documentGroup(category, refs))
	}

	for _, result := range v.checker.Evaluate(rec, files) {
		view.Checklist = append(view.Checklist, model.ChecklistEntry{
			ID:     result.Item.ID,
			Label:  result.Item.Label,
			Status: string(result.Status),
		})
	}

	return view, nil
}

// Render executes View and dispatches the result to the named renderer.
func (v *Viewer) Render(ctx context.Context, req Request) ([]byte, error) {
	view, err := v.View(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := v.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		selection, err := v.selectTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = render.ThemeConfigFromSelection(selection, v.themeFallbacks)
	}

	output, err := renderer.Render(ctx, view, options)
	if err != nil {
		return nil, fmt.Errorf("viewer: render output: %w", err)
	}
	return output, nil
}

func (v *Viewer) selectTheme(name, variant string) (*theme.Selection, error) {
	if v.themeSelector == nil || name == "" {
		return nil, nil
	}
	selection, err := v.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("viewer: select theme %q: %w", name, err)
	}
	return selection, nil
}

func (v *Viewer) rendererFor(name string) (render.Renderer, error) {
	if v.registry == nil {
		return nil, errors.New("viewer: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = v.defaultRenderer
	}

	if target != "" {
		renderer, err := v.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("viewer: renderer %q: %w", name, err)
		}
	}

	names := v.registry.List()
	if len(names) == 0 {
		return nil, errors.New("viewer: no renderers registered")
	}
	return v.registry.Get(names[0])
}

func documentGroup(category string, refs []documents.FileReference) model.DocumentGroup {
	group := model.DocumentGroup{Category: category}
	for _, ref := range refs {
		group.Files = append(group.Files, model.File{
			Name:       ref.Name,
			URL:        ref.URL,
			UploadedAt: ref.UploadedAt,
			SizeBytes:  ref.SizeBytes,
			Source:     string(ref.Source),
		})
	}
	return group
}
