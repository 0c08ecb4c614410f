package record

import (
	"fmt"
	"sort"
	"strings"
)

// aliasTable maps normalized keys to the additional canonical key the value is
// also written under. Aliasing is additive: both keys remain in the output.
// The table reconciles legacy field names that predate the snake_case
// convention used by newer backend endpoints.
var aliasTable = map[string]string{
	"address_line1":       "address_line_1",
	"address_line2":       "address_line_2",
	"company_address1":    "company_address_1",
	"company_address2":    "company_address_2",
	"inviting_address1":   "inviting_address_1",
	"inviting_address2":   "inviting_address_2",
	"booking_document":    "booking_documents_path",
	"evisa_document":      "evisa_document_path",
	"share_code_document": "share_code_document_path",
}

// Normalize converts a raw backend record into a FlatRecord. Keys are
// rewritten camelCase → snake_case at every nesting level; arrays of objects
// are normalized element-wise. After conversion the alias table is applied,
// writing the value under the alternate canonical key as well.
//
// Keys are processed in lexicographic order so collisions resolve
// deterministically: a later-processed key overwrites an earlier write to the
// same output key. No value validation happens here; unknown keys pass
// through unchanged. Normalize never fails and is idempotent on its own
// output.
func Normalize(raw RawRecord) FlatRecord {
	if len(raw) == 0 {
		return FlatRecord{}
	}

	out := make(FlatRecord, len(raw))
	for _, key := range sortedKeys(raw) {
		normalized := SnakeCase(key)
		value := normalizeValue(raw[key])
		out[normalized] = value
		if alias, ok := aliasTable[normalized]; ok {
			out[alias] = value
		}
	}
	return out
}

func normalizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return map[string]any(Normalize(RawRecord(typed)))
	case []any:
		items := make([]any, len(typed))
		for i, item := range typed {
			items[i] = normalizeValue(item)
		}
		return items
	default:
		return value
	}
}

// SnakeCase lowercases key, inserting an underscore before every internal
// uppercase letter. Digits are not treated as boundaries: "addressLine1"
// becomes "address_line1", which the alias table then maps to
// "address_line_1". Already-snake_case input is returned unchanged.
func SnakeCase(key string) string {
	var out strings.Builder
	out.Grow(len(key) + 4)
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				out.WriteByte('_')
			}
			out.WriteRune(r - 'A' + 'a')
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// CamelCase converts a snake_case field name back to the camelCase form the
// bulk-update endpoint expects. This is a heuristic inverse of SnakeCase: it
// removes underscores and capitalizes the following letter, so keys that only
// exist via the alias table (for example "address_line_1") do not round-trip
// to their legacy spelling. See DESIGN.md for the write-back decision.
func CamelCase(key string) string {
	var out strings.Builder
	out.Grow(len(key))
	upper := false
	for i, r := range key {
		if r == '_' && i > 0 && i < len(key)-1 {
			upper = true
			continue
		}
		if upper {
			out.WriteString(strings.ToUpper(string(r)))
			upper = false
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

func sortedKeys(payload map[string]any) []string {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		// JSON numbers decode as float64; keep integral values compact.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case map[string]any, []any, []string:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
