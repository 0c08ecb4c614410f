package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the resolve pipeline.
type RenderOptions struct {
	// Theme carries the resolved theme configuration. Nil means the renderer's
	// built-in defaults.
	Theme *ThemeConfig
	// Sections restricts output to the named categories. Empty renders
	// everything.
	Sections []string
	// HideEmptyValues drops fields whose value is the empty string. The
	// default keeps them so reviewers can see what the applicant skipped.
	HideEmptyValues bool
}
