package record

// RawRecord is the backend payload as decoded from JSON: arbitrarily nested,
// with mixed key casing conventions. It is treated as immutable; the
// normalizer never writes into it.
type RawRecord map[string]any

// FlatRecord maps normalized snake_case keys to scalar or array values.
// Nested objects keep their structure but carry normalized keys throughout.
type FlatRecord map[string]any

// PartitionedRecord splits a FlatRecord into identity/contact/passport fields
// and the dynamic question set. Every key of the source record lands in
// exactly one partition.
type PartitionedRecord struct {
	Personal  FlatRecord
	Questions FlatRecord
}

// String returns the value under key coerced to a string, or "" when the key
// is absent, nil, or not string-shaped. Convenience accessor used throughout
// the resolver and checklist packages.
func (f FlatRecord) String(key string) string {
	return coerceString(f[key])
}

// Has reports whether key is present with a non-empty value.
func (f FlatRecord) Has(key string) bool {
	value, ok := f[key]
	if !ok {
		return false
	}
	return coerceString(value) != "" || isCollection(value)
}

func isCollection(value any) bool {
	switch v := value.(type) {
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return false
	}
}
