package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML catalog document and validates it. The document is a
// sequence of question definitions using the same field names as the Go
// types (id, displayText, category, shape, visibility, fields, branches,
// documentCategory).
func Parse(data []byte) (Catalog, error) {
	var out Catalog
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Load reads and parses a YAML catalog from r.
func Load(r io.Reader) (Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	return Parse(data)
}
