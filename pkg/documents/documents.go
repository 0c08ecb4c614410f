// Package documents merges the backend-hosted document listing with inline
// record fields into one uniform file-reference list per category.
package documents

import (
	"context"
	"encoding/json"
	"path"
	"strings"
)

// Source tags who uploaded a file: the applicant through the public form or
// staff through the admin document manager.
type Source string

const (
	SourceClient Source = "client"
	SourceAdmin  Source = "admin"
)

// FileReference is one displayable document. Never persisted; rebuilt on
// every aggregation.
type FileReference struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploadedAt,omitempty"`
	SizeBytes  int64  `json:"sizeBytes,omitempty"`
	Source     Source `json:"source"`
}

// ListRequest identifies the record and category a listing call targets.
type ListRequest struct {
	RecordID   string
	RecordType string
	Category   string
}

// Lister is the external document-listing collaborator. Implementations
// return backend-hosted files with their own metadata already resolved.
type Lister interface {
	List(ctx context.Context, req ListRequest) ([]FileReference, error)
}

// ListerFunc adapts a function into a Lister.
type ListerFunc func(ctx context.Context, req ListRequest) ([]FileReference, error)

// List delegates to the underlying function.
func (fn ListerFunc) List(ctx context.Context, req ListRequest) ([]FileReference, error) {
	return fn(ctx, req)
}

// DefaultBaseDir is the fixed directory convention client uploads resolve
// against when a path carries no scheme and no leading slash.
const DefaultBaseDir = "uploads/documents/client_documents/"

// inlineFields maps a document category to the record field that may carry
// client-uploaded paths inline.
var inlineFields = map[string]string{
	"schengen_visa": "schengen_visa_image",
	"bookings":      "booking_documents_path",
	"evisa":         "evisa_document_path",
	"share_code":    "share_code_document_path",
}

// InlineField returns the record field backing a document category, if any.
func InlineField(category string) (string, bool) {
	field, ok := inlineFields[category]
	return field, ok
}

// DecodeInline normalizes the three historical shapes of an inline document
// field to a list of path strings: a literal array, a JSON-encoded array, or
// a single path. Malformed JSON yields no files; decode problems are never
// surfaced to the resolver.
func DecodeInline(value any) []string {
	switch typed := value.(type) {
	case nil:
		return nil
	case []string:
		return compact(typed)
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return compact(out)
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return nil
		}
		if strings.HasPrefix(trimmed, "[") {
			var decoded []string
			if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
				return nil
			}
			return compact(decoded)
		}
		return []string{trimmed}
	default:
		return nil
	}
}

func compact(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ResolvePath prefixes relative paths with the base directory. Absolute paths
// and full URLs pass through unchanged.
func ResolvePath(baseDir, p string) string {
	if p == "" {
		return ""
	}
	if strings.Contains(p, "://") || strings.HasPrefix(p, "/") {
		return p
	}
	if baseDir == "" {
		return p
	}
	if !strings.HasSuffix(baseDir, "/") {
		baseDir += "/"
	}
	return baseDir + p
}

// ClientFile builds a client-sourced FileReference from an inline path.
func ClientFile(baseDir, p string) FileReference {
	resolved := ResolvePath(baseDir, p)
	return FileReference{
		Name:   path.Base(p),
		URL:    resolved,
		Source: SourceClient,
	}
}
