package model

import (
	"regexp"
	"strings"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// mandatoryMarkers are the trailing decorations catalog authors append to
// placeholder text to flag a required input.
var mandatoryMarkers = []string{"*", "(mandatory)", "(required)"}

// Labeler converts a field id into a human-friendly label.
type Labeler func(id string) string

// DefaultLabeler splits id on underscores, dashes, and camelCase boundaries
// and title-cases the result.
func DefaultLabeler(id string) string {
	if id == "" {
		return ""
	}

	words := splitWordsPattern.Split(id, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(splitCamel(word)))
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

// DeriveLabel picks the display label for a sub-field: placeholder text with
// mandatory markers stripped, then the explicit label, then a humanized id.
// Ids with a ZIP-like suffix are always relabeled "Postal Code" regardless of
// their declared placeholder.
func DeriveLabel(id, placeholder, label string) string {
	if isZipField(id) {
		return "Postal Code"
	}
	if text := StripMandatoryMarker(placeholder); text != "" {
		return text
	}
	if trimmed := strings.TrimSpace(label); trimmed != "" {
		return trimmed
	}
	return DefaultLabeler(id)
}

// IsMandatory reports whether the placeholder or label text carries a
// trailing mandatory marker.
func IsMandatory(placeholder, label string) bool {
	return hasMandatoryMarker(placeholder) || hasMandatoryMarker(label)
}

// StripMandatoryMarker removes trailing mandatory decorations from text.
func StripMandatoryMarker(text string) string {
	trimmed := strings.TrimSpace(text)
	for changed := true; changed; {
		changed = false
		for _, marker := range mandatoryMarkers {
			if strings.HasSuffix(strings.ToLower(trimmed), marker) {
				trimmed = strings.TrimSpace(trimmed[:len(trimmed)-len(marker)])
				changed = true
			}
		}
	}
	return trimmed
}

func hasMandatoryMarker(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, marker := range mandatoryMarkers {
		if strings.HasSuffix(lower, marker) {
			return true
		}
	}
	return false
}

func isZipField(id string) bool {
	lower := strings.ToLower(id)
	return strings.HasSuffix(lower, "zip") || strings.HasSuffix(lower, "zip_code") || strings.HasSuffix(lower, "zipcode")
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func titleCase(word string) string {
	parts := strings.Split(word, " ")
	for i, part := range parts {
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}
