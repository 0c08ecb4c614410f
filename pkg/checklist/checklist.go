// Package checklist evaluates document-completeness heuristics over the
// aggregated file lists.
package checklist

import (
	"strings"

	"github.com/goliatone/go-recordview/pkg/documents"
	"github.com/goliatone/go-recordview/pkg/record"
	"github.com/goliatone/go-recordview/pkg/visibility"
	"github.com/goliatone/go-recordview/pkg/visibility/expr"
)

// Status is the ternary outcome of one checklist item.
type Status string

const (
	// StatusCompleted means at least one matching document is present.
	StatusCompleted Status = "completed"
	// StatusPending means the item applies but no matching document exists
	// yet.
	StatusPending Status = "pending"
	// StatusMissing means the item does not apply to this record.
	StatusMissing Status = "missing"
)

// Item is one checklist entry. Keywords filter the aggregated documents of
// DocumentCategory; an empty keyword set means any document satisfies the
// item. Visibility is an expr rule deciding whether the item applies at all.
type Item struct {
	ID               string   `yaml:"id"`
	Label            string   `yaml:"label"`
	DocumentCategory string   `yaml:"documentCategory"`
	Keywords         []string `yaml:"keywords,omitempty"`
	Visibility       string   `yaml:"visibility,omitempty"`
}

// Result pairs an item with its evaluated status.
type Result struct {
	Item   Item
	Status Status
}

// Option customises the evaluator.
type Option func(*Evaluator)

// WithItems replaces the default checklist.
func WithItems(items []Item) Option {
	return func(e *Evaluator) {
		if len(items) > 0 {
			e.items = items
		}
	}
}

// WithEvaluator injects a custom visibility evaluator.
func WithEvaluator(v visibility.Evaluator) Option {
	return func(e *Evaluator) {
		if v != nil {
			e.visibility = v
		}
	}
}

// Evaluator applies the checklist against aggregated documents.
type Evaluator struct {
	items      []Item
	visibility visibility.Evaluator
}

// New constructs an Evaluator with the default items unless overridden.
func New(options ...Option) *Evaluator {
	e := &Evaluator{
		items:      Default(),
		visibility: expr.New(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Items returns the evaluator's checklist in declaration order.
func (e *Evaluator) Items() []Item {
	return append([]Item(nil), e.items...)
}

// Evaluate computes the status of every item. files maps a document category
// to its aggregated references. Inapplicable items report missing; applicable
// items report completed or pending. Visibility evaluation errors resolve to
// applicable, mirroring the field resolver's fail-open policy.
func (e *Evaluator) Evaluate(rec record.PartitionedRecord, files map[string][]documents.FileReference) []Result {
	ctx := visibility.Context{
		Questions: rec.Questions,
		Personal:  rec.Personal,
	}

	out := make([]Result, 0, len(e.items))
	for _, item := range e.items {
		out = append(out, Result{Item: item, Status: e.status(item, ctx, files[item.DocumentCategory])})
	}
	return out
}

func (e *Evaluator) status(item Item, ctx visibility.Context, files []documents.FileReference) Status {
	if strings.TrimSpace(item.Visibility) != "" {
		applies, err := e.visibility.Eval(item.ID, item.Visibility, ctx)
		if err == nil && !applies {
			return StatusMissing
		}
	}
	for _, file := range files {
		if Matches(file, item.Keywords) {
			return StatusCompleted
		}
	}
	return StatusPending
}

// Matches reports whether a file satisfies the keyword filter. Matching is
// case-insensitive substring over filename and URL, and deliberately loose:
// a filename token of three or more characters that prefixes a keyword also
// counts, so "pay_march.pdf" satisfies the "payslip" keyword. An empty
// keyword set matches any file.
func Matches(file documents.FileReference, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}

	subject := strings.ToLower(file.Name + " " + file.URL)
	tokens := tokenize(subject)
	for _, keyword := range keywords {
		kw := strings.ToLower(strings.TrimSpace(keyword))
		if kw == "" {
			continue
		}
		if strings.Contains(subject, kw) {
			return true
		}
		for _, token := range tokens {
			if len(token) >= 3 && strings.HasPrefix(kw, token) {
				return true
			}
		}
	}
	return false
}

func tokenize(subject string) []string {
	return strings.FieldsFunc(subject, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
}

// Default returns the built-in checklist. The occupation- and credit-card
// dependent items all filter the bookings category, differentiated only by
// keyword sets and visibility.
func Default() []Item {
	return []Item{
		{
			ID:               "payslips",
			Label:            "Recent payslips",
			DocumentCategory: "bookings",
			Keywords:         []string{"payslip", "salary"},
			Visibility:       `occupation_status == "Employee"`,
		},
		{
			ID:               "employment_letter",
			Label:            "Employment letter",
			DocumentCategory: "bookings",
			Keywords:         []string{"employment", "employer", "work_letter"},
			Visibility:       `occupation_status == "Employee"`,
		},
		{
			ID:               "tax_documents",
			Label:            "Tax documents",
			DocumentCategory: "bookings",
			Keywords:         []string{"tax", "hmrc", "self_assessment"},
			Visibility:       `occupation_status == "Self-Employed"`,
		},
		{
			ID:               "student_letter",
			Label:            "Student status letter",
			DocumentCategory: "bookings",
			Keywords:         []string{"student", "enrolment", "enrollment", "university"},
			Visibility:       `occupation_status == "Student"`,
		},
		{
			ID:               "credit_card_statement",
			Label:            "Credit card statement",
			DocumentCategory: "bookings",
			Keywords:         []string{"credit_card", "card_statement"},
			Visibility:       "has_credit_card",
		},
		{
			ID:               "booking_documents",
			Label:            "Travel bookings",
			DocumentCategory: "bookings",
		},
		{
			ID:               "schengen_visa_scan",
			Label:            "Schengen visa scan",
			DocumentCategory: "schengen_visa",
			Visibility:       `has_schengen_visa == "Yes"`,
		},
		{
			ID:               "evisa_document",
			Label:            "eVisa document",
			DocumentCategory: "evisa",
		},
		{
			ID:               "share_code_document",
			Label:            "Share code document",
			DocumentCategory: "share_code",
		},
	}
}
