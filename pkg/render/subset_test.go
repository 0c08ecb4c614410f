package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-recordview/pkg/model"
	"github.com/goliatone/go-recordview/pkg/render"
)

func sampleView() model.ViewModel {
	return model.ViewModel{
		RecordID:   "42",
		RecordType: "visa",
		Sections: []model.Section{
			{Category: "Personal Information", Fields: []model.ResolvedField{{ID: "first_name"}}},
			{Category: "Travel", Fields: []model.ResolvedField{{ID: "travel_date"}}},
			{Category: "Occupation", Fields: []model.ResolvedField{{ID: "occupation_status"}}},
		},
	}
}

func TestApplySectionsFilters(t *testing.T) {
	t.Parallel()

	view := sampleView()
	render.ApplySections(&view, []string{"travel", " Personal Information "})

	want := []string{"Personal Information", "Travel"}
	var got []string
	for _, section := range view.Sections {
		got = append(got, section.Category)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestApplySectionsEmptyFilterKeepsAll(t *testing.T) {
	t.Parallel()

	view := sampleView()
	render.ApplySections(&view, nil)
	if len(view.Sections) != 3 {
		t.Errorf("sections = %d, want 3", len(view.Sections))
	}
}

func TestApplySectionsNoMatchYieldsNil(t *testing.T) {
	t.Parallel()

	view := sampleView()
	render.ApplySections(&view, []string{"unknown"})
	if view.Sections != nil {
		t.Errorf("sections = %v, want nil", view.Sections)
	}
}
