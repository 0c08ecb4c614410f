package checklist

import (
	"testing"

	"github.com/goliatone/go-recordview/pkg/documents"
	"github.com/goliatone/go-recordview/pkg/record"
)

func questionsOnly(questions record.FlatRecord) record.PartitionedRecord {
	if questions == nil {
		questions = record.FlatRecord{}
	}
	return record.PartitionedRecord{Personal: record.FlatRecord{}, Questions: questions}
}

func statusOf(t *testing.T, results []Result, id string) Status {
	t.Helper()
	for _, r := range results {
		if r.Item.ID == id {
			return r.Status
		}
	}
	t.Fatalf("checklist item %q not found", id)
	return ""
}

func TestMatchesKeywordHeuristics(t *testing.T) {
	t.Parallel()

	keywords := []string{"payslip", "salary"}

	if !Matches(documents.FileReference{Name: "pay_march.pdf", URL: "2025/pay_march.pdf"}, keywords) {
		t.Fatal("token prefix of a keyword must match")
	}
	if !Matches(documents.FileReference{Name: "march_payslip.pdf"}, keywords) {
		t.Fatal("direct substring must match")
	}
	if !Matches(documents.FileReference{Name: "x.pdf", URL: "/files/SALARY-2025.PDF"}, keywords) {
		t.Fatal("matching must be case-insensitive and cover the URL")
	}
	if Matches(documents.FileReference{Name: "flight_booking.pdf"}, keywords) {
		t.Fatal("unrelated file must not match")
	}
	if !Matches(documents.FileReference{Name: "anything.pdf"}, nil) {
		t.Fatal("empty keyword set must match any file")
	}
}

func TestEvaluateEmployeeRecord(t *testing.T) {
	t.Parallel()

	eval := New()
	results := eval.Evaluate(
		questionsOnly(record.FlatRecord{
			"occupation_status": "Employee",
			"has_credit_card":   "No",
		}),
		map[string][]documents.FileReference{
			"bookings": {
				{Name: "pay_march.pdf", URL: "uploads/documents/client_documents/2025/pay_march.pdf", Source: documents.SourceClient},
			},
		},
	)

	if got := statusOf(t, results, "payslips"); got != StatusCompleted {
		t.Fatalf("payslips = %s, want completed", got)
	}
	if got := statusOf(t, results, "employment_letter"); got != StatusPending {
		t.Fatalf("employment_letter = %s, want pending", got)
	}
	if got := statusOf(t, results, "student_letter"); got != StatusMissing {
		t.Fatalf("student_letter = %s, want missing (inapplicable)", got)
	}
	if got := statusOf(t, results, "credit_card_statement"); got != StatusMissing {
		t.Fatalf("credit_card_statement = %s, want missing for has_credit_card=No", got)
	}
	if got := statusOf(t, results, "booking_documents"); got != StatusCompleted {
		t.Fatalf("booking_documents = %s, want completed (any file counts)", got)
	}
}

func TestEvaluateNoDocuments(t *testing.T) {
	t.Parallel()

	eval := New()
	results := eval.Evaluate(
		questionsOnly(record.FlatRecord{"occupation_status": "Student"}),
		nil,
	)

	if got := statusOf(t, results, "student_letter"); got != StatusPending {
		t.Fatalf("student_letter = %s, want pending (applicable but empty)", got)
	}
	if got := statusOf(t, results, "payslips"); got != StatusMissing {
		t.Fatalf("payslips = %s, want missing for a student record", got)
	}
	if got := statusOf(t, results, "evisa_document"); got != StatusPending {
		t.Fatalf("evisa_document = %s, want pending", got)
	}
}

func TestEvaluateCustomItems(t *testing.T) {
	t.Parallel()

	eval := New(WithItems([]Item{{
		ID:               "invitation",
		Label:            "Invitation letter",
		DocumentCategory: "bookings",
		Keywords:         []string{"invitation"},
	}}))

	results := eval.Evaluate(questionsOnly(nil), map[string][]documents.FileReference{
		"bookings": {{Name: "invitation_letter.pdf"}},
	})
	if len(results) != 1 || results[0].Status != StatusCompleted {
		t.Fatalf("unexpected results: %+v", results)
	}
}
