package model

// ResolvedField is the unit the renderers consume: one labeled, categorized
// value per visible leaf field.
type ResolvedField struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	Category  string `json:"category"`
	Mandatory bool   `json:"mandatory"`
}

// Section groups resolved fields under one display category, in the fixed
// category order.
type Section struct {
	Category string          `json:"category"`
	Fields   []ResolvedField `json:"fields"`
}

// ChecklistEntry is a checklist item paired with its evaluated status.
type ChecklistEntry struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Status string `json:"status"`
}

// DocumentGroup holds the aggregated file references for one document
// category.
type DocumentGroup struct {
	Category string `json:"category"`
	Files    []File `json:"files"`
}

// File is the renderer-facing projection of a documents.FileReference.
type File struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploadedAt,omitempty"`
	SizeBytes  int64  `json:"sizeBytes,omitempty"`
	Source     string `json:"source"`
}

// ViewModel is the top-level structure renderers receive: the full resolved
// view for one client record. It is regenerated from scratch on every
// render, never patched incrementally.
type ViewModel struct {
	RecordID   string           `json:"recordId"`
	RecordType string           `json:"recordType"`
	Sections   []Section        `json:"sections"`
	Checklist  []ChecklistEntry `json:"checklist,omitempty"`
	Documents  []DocumentGroup  `json:"documents,omitempty"`
}

// SectionByCategory returns the section for category and whether it exists.
func (v ViewModel) SectionByCategory(category string) (Section, bool) {
	for _, section := range v.Sections {
		if section.Category == category {
			return section, true
		}
	}
	return Section{}, false
}
