package htmlview

import "github.com/goliatone/go-recordview/pkg/model"

// sanitizeView strips markup from every record-supplied string. Labels and
// categories come from the catalog and are left alone; values, file names,
// and file URLs arrive from the backend and cannot be trusted.
func (r *Renderer) sanitizeView(view model.ViewModel) model.ViewModel {
	if r.policy == nil {
		return view
	}

	sections := make([]model.Section, len(view.Sections))
	for i, section := range view.Sections {
		fields := make([]model.ResolvedField, len(section.Fields))
		for j, field := range section.Fields {
			field.Value = r.policy.Sanitize(field.Value)
			fields[j] = field
		}
		section.Fields = fields
		sections[i] = section
	}
	view.Sections = sections

	groups := make([]model.DocumentGroup, len(view.Documents))
	for i, group := range view.Documents {
		files := make([]model.File, len(group.Files))
		for j, file := range group.Files {
			file.Name = r.policy.Sanitize(file.Name)
			file.URL = r.policy.Sanitize(file.URL)
			files[j] = file
		}
		group.Files = files
		groups[i] = group
	}
	view.Documents = groups

	return view
}
