package documents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goliatone/go-recordview/pkg/record"
)

func questionsOnly(questions record.FlatRecord) record.PartitionedRecord {
	return record.PartitionedRecord{Personal: record.FlatRecord{}, Questions: questions}
}

func TestAggregateDegradesOnListerFailure(t *testing.T) {
	t.Parallel()

	var logged []string
	agg := NewAggregator(
		WithLister(ListerFunc(func(context.Context, ListRequest) ([]FileReference, error) {
			return nil, errors.New("connection refused")
		})),
		WithLogf(func(format string, args ...any) {
			logged = append(logged, format)
		}),
	)

	got := agg.Aggregate(context.Background(),
		ListRequest{RecordID: "42", RecordType: "visa", Category: "bookings"},
		questionsOnly(record.FlatRecord{
			"booking_documents_path": `["2025/01/bank_statement.pdf"]`,
		}),
	)

	want := []FileReference{{
		Name:   "bank_statement.pdf",
		URL:    "uploads/documents/client_documents/2025/01/bank_statement.pdf",
		Source: SourceClient,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Aggregate mismatch (-want +got):\n%s", diff)
	}
	if len(logged) != 1 {
		t.Fatalf("expected one degraded-aggregation log line, got %d", len(logged))
	}
}

func TestAggregateMergeOrderAndNoDedup(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(WithLister(ListerFunc(func(context.Context, ListRequest) ([]FileReference, error) {
		return []FileReference{
			{Name: "visa_scan.pdf", URL: "/files/visa_scan.pdf", Source: SourceAdmin},
			{Name: "shared.pdf", URL: "uploads/documents/client_documents/shared.pdf", Source: SourceClient},
		}, nil
	})))

	got := agg.Aggregate(context.Background(),
		ListRequest{Category: "bookings"},
		questionsOnly(record.FlatRecord{
			"booking_documents_path": []any{"shared.pdf"},
		}),
	)

	if len(got) != 3 {
		t.Fatalf("expected 3 references (no de-duplication), got %d", len(got))
	}
	if got[0].Source != SourceAdmin {
		t.Fatalf("backend-hosted files must come first, got %+v", got[0])
	}
	if got[2].URL != "uploads/documents/client_documents/shared.pdf" || got[2].Source != SourceClient {
		t.Fatalf("inline file mis-built: %+v", got[2])
	}
}

func TestAggregateDefaultsListedSourceToAdmin(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(WithLister(ListerFunc(func(context.Context, ListRequest) ([]FileReference, error) {
		return []FileReference{{Name: "letter.pdf", URL: "/files/letter.pdf"}}, nil
	})))

	got := agg.Aggregate(context.Background(), ListRequest{Category: "evisa"}, questionsOnly(nil))
	if len(got) != 1 || got[0].Source != SourceAdmin {
		t.Fatalf("collaborator files without a source must default to admin: %+v", got)
	}
}

func TestAggregateUnknownCategoryHasNoInlineSource(t *testing.T) {
	t.Parallel()

	agg := NewAggregator()
	got := agg.Aggregate(context.Background(), ListRequest{Category: "unknown"}, questionsOnly(record.FlatRecord{
		"booking_documents_path": "ignored.pdf",
	}))
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestDecodeInlineShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value any
		want  []string
	}{
		{"literal array", []any{"a.pdf", "b.pdf"}, []string{"a.pdf", "b.pdf"}},
		{"string slice", []string{"a.pdf"}, []string{"a.pdf"}},
		{"json encoded", `["2025/01/x.pdf","y.pdf"]`, []string{"2025/01/x.pdf", "y.pdf"}},
		{"single path", "passport.jpg", []string{"passport.jpg"}},
		{"malformed json", `["unterminated`, nil},
		{"empty string", "  ", nil},
		{"nil", nil, nil},
		{"wrong type", 42, nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := DecodeInline(tc.value)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("DecodeInline mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"2025/01/x.pdf", DefaultBaseDir + "2025/01/x.pdf"},
		{"/absolute/x.pdf", "/absolute/x.pdf"},
		{"https://cdn.example/x.pdf", "https://cdn.example/x.pdf"},
		{"", ""},
		{"plain.pdf", DefaultBaseDir + "plain.pdf"},
	}
	for _, tc := range cases {
		if got := ResolvePath(DefaultBaseDir, tc.input); got != tc.want {
			t.Fatalf("ResolvePath(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}

	if got := ResolvePath("custom/dir", "x.pdf"); !strings.HasPrefix(got, "custom/dir/") {
		t.Fatalf("base dir without trailing slash mishandled: %q", got)
	}
}
