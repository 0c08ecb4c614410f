package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	t.Parallel()

	if err := Default().Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
}

func TestDefaultCatalogSponsorBranches(t *testing.T) {
	t.Parallel()

	q, ok := Default().ByID("travel_covered_by")
	if !ok {
		t.Fatal("travel_covered_by missing from default catalog")
	}
	if q.Shape != ShapeSponsor {
		t.Fatalf("unexpected shape %q", q.Shape)
	}
	if len(q.Branches) != 2 {
		t.Fatalf("expected two sponsor branches, got %d", len(q.Branches))
	}
	for _, branch := range q.Branches {
		if branch.Equals != SponsorFamilyMember && branch.Equals != SponsorHostCompany {
			t.Fatalf("unexpected branch literal %q", branch.Equals)
		}
		if len(branch.Fields) < 9 || len(branch.Fields) > 10 {
			t.Fatalf("branch %q has %d fields, want 9-10", branch.Equals, len(branch.Fields))
		}
	}
}

func TestDefaultCatalogAccommodationBranches(t *testing.T) {
	t.Parallel()

	q, ok := Default().ByID("accommodation")
	if !ok {
		t.Fatal("accommodation missing from default catalog")
	}
	if len(q.Branches) != 3 {
		t.Fatalf("expected three accommodation branches, got %d", len(q.Branches))
	}
	for _, branch := range q.Branches {
		if len(branch.Fields) < 6 || len(branch.Fields) > 11 {
			t.Fatalf("branch %v has %d fields, want 6-11", branch.Match, len(branch.Fields))
		}
	}
}

func TestValidateRejectsBadEntries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		catalog Catalog
		wantErr string
	}{
		{
			name:    "empty id",
			catalog: Catalog{{Category: CategoryBookings, Shape: ShapeScalar, Field: "x"}},
			wantErr: "empty id",
		},
		{
			name:    "unknown category",
			catalog: Catalog{{ID: "x", Category: "Misc", Shape: ShapeScalar, Field: "x"}},
			wantErr: "unknown category",
		},
		{
			name:    "scalar without field",
			catalog: Catalog{{ID: "x", Category: CategoryBookings, Shape: ShapeScalar}},
			wantErr: "requires a field",
		},
		{
			name:    "unknown shape",
			catalog: Catalog{{ID: "x", Category: CategoryBookings, Shape: "blob"}},
			wantErr: "unknown shape",
		},
		{
			name:    "file without document category",
			catalog: Catalog{{ID: "x", Category: CategoryBookings, Shape: ShapeFile}},
			wantErr: "document category",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.catalog.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestFileQuestions(t *testing.T) {
	t.Parallel()

	files := Default().FileQuestions()
	if len(files) != 4 {
		t.Fatalf("expected 4 file questions, got %d", len(files))
	}
	categories := make(map[string]bool)
	for _, q := range files {
		categories[q.DocumentCategory] = true
	}
	for _, want := range []string{"schengen_visa", "bookings", "evisa", "share_code"} {
		if !categories[want] {
			t.Fatalf("missing file question for %q", want)
		}
	}
}
