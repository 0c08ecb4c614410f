// Package resolve walks the question catalog against a partitioned record and
// produces the visible, labeled field set the renderers consume.
package resolve

import (
	"strings"

	internalmodel "github.com/goliatone/go-recordview/internal/model"
	"github.com/goliatone/go-recordview/pkg/catalog"
	"github.com/goliatone/go-recordview/pkg/model"
	"github.com/goliatone/go-recordview/pkg/record"
	"github.com/goliatone/go-recordview/pkg/visibility"
	"github.com/goliatone/go-recordview/pkg/visibility/expr"
)

// Field ids involved in the settled-status display rule: the settled marker
// is hidden whenever both companion dates are present, even though the value
// stays in the record.
const (
	settledFieldID    = "residence_status_settled"
	settledIssueDate  = "residence_issue_date"
	settledExpiryDate = "residence_expiry_date"
)

// Option customises the resolver configuration.
type Option func(*Resolver)

// WithCatalog replaces the default question catalog.
func WithCatalog(c catalog.Catalog) Option {
	return func(r *Resolver) {
		if len(c) > 0 {
			r.catalog = c
		}
	}
}

// WithEvaluator injects a custom visibility evaluator.
func WithEvaluator(e visibility.Evaluator) Option {
	return func(r *Resolver) {
		if e != nil {
			r.evaluator = e
		}
	}
}

// Resolver evaluates catalog definitions in order against a partitioned
// record. Definitions write into a field-id-keyed map with last-write-wins
// semantics; a definition hidden by its visibility rule contributes nothing,
// sub-fields included.
type Resolver struct {
	catalog   catalog.Catalog
	evaluator visibility.Evaluator
}

// New constructs a Resolver with the default catalog and expr evaluator
// unless options override them.
func New(options ...Option) *Resolver {
	r := &Resolver{
		catalog:   catalog.Default(),
		evaluator: expr.New(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Fields resolves the record into the flat field list, in catalog insertion
// order. Overwrites keep the original position of the first write.
func (r *Resolver) Fields(rec record.PartitionedRecord) []model.ResolvedField {
	if len(rec.Personal) == 0 && len(rec.Questions) == 0 {
		return nil
	}

	ctx := visibility.Context{
		Questions: rec.Questions,
		Personal:  rec.Personal,
	}

	byID := make(map[string]int)
	var fields []model.ResolvedField

	write := func(field model.ResolvedField) {
		if pos, ok := byID[field.ID]; ok {
			fields[pos] = field
			return
		}
		byID[field.ID] = len(fields)
		fields = append(fields, field)
	}

	for _, q := range r.catalog {
		if !r.visible(q, ctx) {
			continue
		}

		switch q.Shape {
		case catalog.ShapeAccommodation:
			r.resolveAccommodation(q, rec, write)
		case catalog.ShapeSponsor:
			r.resolveSponsor(q, rec, write)
		case catalog.ShapeGroup:
			r.resolveGroup(q, rec, write)
		case catalog.ShapeScalar:
			write(model.ResolvedField{
				ID:        q.Field,
				Label:     displayText(q),
				Value:     rec.Questions.String(q.Field),
				Category:  q.Category,
				Mandatory: q.Mandatory,
			})
		case catalog.ShapeFile:
			// File questions contribute no scalar entries; the document
			// aggregator renders them keyed by DocumentCategory.
		}
	}

	return r.applySettledRule(fields, byID, rec)
}

// Sections resolves the record and groups the result by category in the
// fixed display order. Categories without fields are omitted.
func (r *Resolver) Sections(rec record.PartitionedRecord) []model.Section {
	fields := r.Fields(rec)
	if len(fields) == 0 {
		return nil
	}

	grouped := make(map[string][]model.ResolvedField)
	for _, field := range fields {
		grouped[field.Category] = append(grouped[field.Category], field)
	}

	var out []model.Section
	for _, category := range catalog.CategoryOrder() {
		if entries, ok := grouped[category]; ok {
			out = append(out, model.Section{Category: category, Fields: entries})
		}
	}
	return out
}

// visible evaluates the question's rule. Evaluation failures resolve to
// visible so a malformed rule never silently hides record data.
func (r *Resolver) visible(q catalog.Question, ctx visibility.Context) bool {
	if strings.TrimSpace(q.Visibility) == "" {
		return true
	}
	ok, err := r.evaluator.Eval(q.ID, q.Visibility, ctx)
	if err != nil {
		return true
	}
	return ok
}

func (r *Resolver) resolveAccommodation(q catalog.Question, rec record.PartitionedRecord, write func(model.ResolvedField)) {
	visaType := strings.ToLower(rec.Personal.String("visa_type"))
	if visaType == "" {
		return
	}
	for _, branch := range q.Branches {
		if !branchMatches(branch, visaType) {
			continue
		}
		for _, sub := range branch.Fields {
			write(subFieldEntry(sub, q.Category, rec.Questions))
		}
		return
	}
}

func branchMatches(branch catalog.Branch, visaType string) bool {
	for _, term := range branch.Match {
		if term == "" {
			continue
		}
		if strings.Contains(visaType, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func (r *Resolver) resolveSponsor(q catalog.Question, rec record.PartitionedRecord, write func(model.ResolvedField)) {
	value := rec.Questions.String(q.Field)
	write(model.ResolvedField{
		ID:        q.Field,
		Label:     displayText(q),
		Value:     value,
		Category:  q.Category,
		Mandatory: q.Mandatory,
	})

	for _, branch := range q.Branches {
		if branch.Equals != value {
			continue
		}
		for _, sub := range branch.Fields {
			write(subFieldEntry(sub, q.Category, rec.Questions))
		}
		return
	}
}

func (r *Resolver) resolveGroup(q catalog.Question, rec record.PartitionedRecord, write func(model.ResolvedField)) {
	source := rec.Questions
	if q.Table == catalog.TablePersonal {
		source = rec.Personal
	}
	for _, sub := range q.Fields {
		write(subFieldEntry(sub, q.Category, source))
	}
}

func subFieldEntry(sub catalog.SubField, category string, source record.FlatRecord) model.ResolvedField {
	return model.ResolvedField{
		ID:        sub.ID,
		Label:     internalmodel.DeriveLabel(sub.ID, sub.Placeholder, sub.Label),
		Value:     source.String(sub.ID),
		Category:  category,
		Mandatory: internalmodel.IsMandatory(sub.Placeholder, sub.Label),
	}
}

func displayText(q catalog.Question) string {
	if strings.TrimSpace(q.DisplayText) != "" {
		return q.DisplayText
	}
	return internalmodel.DefaultLabeler(q.Field)
}

func (r *Resolver) applySettledRule(fields []model.ResolvedField, byID map[string]int, rec record.PartitionedRecord) []model.ResolvedField {
	pos, ok := byID[settledFieldID]
	if !ok {
		return fields
	}
	if rec.Questions.String(settledIssueDate) == "" || rec.Questions.String(settledExpiryDate) == "" {
		return fields
	}
	return append(fields[:pos:pos], fields[pos+1:]...)
}
