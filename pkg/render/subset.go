package render

import (
	"strings"

	"github.com/goliatone/go-recordview/pkg/model"
)

// ApplySections prunes the view model down to the named categories, keeping
// the original section order. When sections is empty or view is nil, the view
// is returned unchanged. Checklist and documents are untouched; they are not
// sectioned.
func ApplySections(view *model.ViewModel, sections []string) {
	if view == nil {
		return
	}
	tokens := normaliseTokens(sections)
	if len(tokens) == 0 {
		return
	}

	filtered := make([]model.Section, 0, len(view.Sections))
	for _, section := range view.Sections {
		if _, ok := tokens[normaliseToken(section.Category)]; ok {
			filtered = append(filtered, section)
		}
	}
	if len(filtered) == 0 {
		filtered = nil
	}
	view.Sections = filtered
}

func normaliseTokens(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, value := range values {
		token := normaliseToken(value)
		if token == "" {
			continue
		}
		out[token] = struct{}{}
	}
	return out
}

func normaliseToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
