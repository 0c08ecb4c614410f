// Package catalog defines the static question catalog that drives which
// record fields exist, how they are grouped, and when they are visible.
// Definitions are declarative data: visibility predicates are rule strings
// evaluated by pkg/visibility/expr, never code.
package catalog

import (
	"fmt"
	"strings"
)

// Shape tags the structural kind of a question. The resolver dispatches on
// this tag exhaustively; there is no duck typing on which optional fields
// happen to be set.
type Shape string

const (
	// ShapeScalar emits a single entry sourced from the question partition.
	ShapeScalar Shape = "scalar"
	// ShapeGroup emits one entry per sub-field.
	ShapeGroup Shape = "group"
	// ShapeAccommodation branches on personal.visa_type into disjoint
	// sub-field sets.
	ShapeAccommodation Shape = "accommodation"
	// ShapeSponsor always emits its own field and conditionally one branch
	// of sponsor sub-fields keyed by that field's literal value.
	ShapeSponsor Shape = "sponsor"
	// ShapeFile contributes no scalar entries; file rendering is delegated
	// to the document aggregator keyed by DocumentCategory.
	ShapeFile Shape = "file"
)

// Table names the record partition a group's sub-fields read from.
const (
	TableQuestions = "questions"
	TablePersonal  = "personal"
)

// Display categories in their fixed presentation order.
const (
	CategoryPersonalProfile = "Personal Profile"
	CategoryFinancial       = "Financial & Sponsorship"
	CategoryEmployment      = "Employment / Occupation"
	CategoryTravelPlans     = "Travel Plans"
	CategoryAccommodation   = "Accommodation"
	CategoryImmigration     = "Immigration Status"
	CategoryTravelHistory   = "Travel History"
	CategoryBookings        = "Bookings"
	CategoryClientDocuments = "Client Documents"
)

// CategoryOrder returns the fixed display order of categories.
func CategoryOrder() []string {
	return []string{
		CategoryPersonalProfile,
		CategoryFinancial,
		CategoryEmployment,
		CategoryTravelPlans,
		CategoryAccommodation,
		CategoryImmigration,
		CategoryTravelHistory,
		CategoryBookings,
		CategoryClientDocuments,
	}
}

// SubField is one leaf input within a group or branch. Placeholder text may
// carry a trailing mandatory marker ("*" or "(mandatory)"); the resolver
// strips it for display and records the flag.
type SubField struct {
	ID          string `yaml:"id"`
	Placeholder string `yaml:"placeholder,omitempty"`
	Label       string `yaml:"label,omitempty"`
}

// Branch is a conditional sub-field set. For accommodation questions a branch
// applies when personal.visa_type contains any of Match (case-insensitive);
// for sponsor questions it applies when the question's own value equals
// Equals exactly.
type Branch struct {
	Match  []string   `yaml:"match,omitempty"`
	Equals string     `yaml:"equals,omitempty"`
	Fields []SubField `yaml:"fields"`
}

// Question is one declarative unit of the catalog.
type Question struct {
	ID          string `yaml:"id"`
	DisplayText string `yaml:"displayText,omitempty"`
	Category    string `yaml:"category"`
	Mandatory   bool   `yaml:"mandatory,omitempty"`
	// Visibility is an expr rule; empty means always visible.
	Visibility string `yaml:"visibility,omitempty"`
	Shape      Shape  `yaml:"shape"`
	// Field is the question-partition key a scalar or sponsor question reads.
	Field string `yaml:"field,omitempty"`
	// Table selects the partition group sub-fields read from. Defaults to
	// the question partition.
	Table  string     `yaml:"table,omitempty"`
	Fields []SubField `yaml:"fields,omitempty"`
	// Branches hold the conditional sub-field sets of accommodation and
	// sponsor questions.
	Branches []Branch `yaml:"branches,omitempty"`
	// DocumentCategory links a file question to the document aggregator.
	DocumentCategory string `yaml:"documentCategory,omitempty"`
}

// Catalog is an ordered list of question definitions. Order matters: the
// resolver evaluates definitions in catalog order with last-write-wins
// semantics per field id.
type Catalog []Question

// Validate checks structural invariants and names the offending entry in
// every error.
func (c Catalog) Validate() error {
	categories := make(map[string]struct{}, len(CategoryOrder()))
	for _, category := range CategoryOrder() {
		categories[category] = struct{}{}
	}

	for i, q := range c {
		if strings.TrimSpace(q.ID) == "" {
			return fmt.Errorf("catalog: entry %d has an empty id", i)
		}
		if _, ok := categories[q.Category]; !ok {
			return fmt.Errorf("catalog: question %q has unknown category %q", q.ID, q.Category)
		}
		switch q.Shape {
		case ShapeScalar:
			if strings.TrimSpace(q.Field) == "" {
				return fmt.Errorf("catalog: scalar question %q requires a field", q.ID)
			}
		case ShapeGroup:
			if len(q.Fields) == 0 {
				return fmt.Errorf("catalog: group question %q has no sub-fields", q.ID)
			}
			if q.Table != "" && q.Table != TableQuestions && q.Table != TablePersonal {
				return fmt.Errorf("catalog: group question %q has unknown table %q", q.ID, q.Table)
			}
		case ShapeAccommodation:
			for bi, branch := range q.Branches {
				if len(branch.Match) == 0 {
					return fmt.Errorf("catalog: accommodation question %q branch %d has no match terms", q.ID, bi)
				}
			}
		case ShapeSponsor:
			if strings.TrimSpace(q.Field) == "" {
				return fmt.Errorf("catalog: sponsor question %q requires a field", q.ID)
			}
			for bi, branch := range q.Branches {
				if strings.TrimSpace(branch.Equals) == "" {
					return fmt.Errorf("catalog: sponsor question %q branch %d has no equals literal", q.ID, bi)
				}
			}
		case ShapeFile:
			if strings.TrimSpace(q.DocumentCategory) == "" {
				return fmt.Errorf("catalog: file question %q requires a document category", q.ID)
			}
		default:
			return fmt.Errorf("catalog: question %q has unknown shape %q", q.ID, q.Shape)
		}
	}
	return nil
}

// ByID returns the first question with the given id.
func (c Catalog) ByID(id string) (Question, bool) {
	for _, q := range c {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// FileQuestions returns file-shaped questions in catalog order.
func (c Catalog) FileQuestions() []Question {
	var out []Question
	for _, q := range c {
		if q.Shape == ShapeFile {
			out = append(out, q)
		}
	}
	return out
}
