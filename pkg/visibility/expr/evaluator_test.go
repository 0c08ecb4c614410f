package expr

import (
	"testing"

	"github.com/goliatone/go-recordview/pkg/visibility"
)

func TestEvaluatorEquality(t *testing.T) {
	t.Parallel()

	eval := New()

	ok, err := eval.Eval("employment", `occupation_status == "Employee"`, visibility.Context{
		Questions: map[string]any{"occupation_status": "Employee"},
	})
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected match")
	}

	ok, err = eval.Eval("employment", `occupation_status != "Student"`, visibility.Context{
		Questions: map[string]any{"occupation_status": "Employee"},
	})
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected inequality to hold")
	}
}

func TestEvaluatorContains(t *testing.T) {
	t.Parallel()

	eval := New()

	ok, err := eval.Eval("accommodation", `personal.visa_type ~= "tourist"`, visibility.Context{
		Personal: map[string]any{"visa_type": "Schengen Tourist Visa"},
	})
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected case-insensitive substring match")
	}

	ok, err = eval.Eval("accommodation", `personal.visa_type ~= "tourist"`, visibility.Context{
		Personal: map[string]any{},
	})
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if ok {
		t.Fatal("substring match against unset field must fail")
	}
}

func TestEvaluatorTruthyAndNot(t *testing.T) {
	t.Parallel()

	eval := New()

	ok, err := eval.Eval("credit_card", "has_credit_card", visibility.Context{
		Questions: map[string]any{"has_credit_card": "Yes"},
	})
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected truthy")
	}

	ok, err = eval.Eval("credit_card", "has_credit_card", visibility.Context{
		Questions: map[string]any{"has_credit_card": "No"},
	})
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if ok {
		t.Fatal(`"No" must not be truthy`)
	}

	ok, err = eval.Eval("credit_card", "!has_credit_card", visibility.Context{})
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatal("negated absent field must be true")
	}
}

func TestEvaluatorComposition(t *testing.T) {
	t.Parallel()

	eval := New()

	ctx := visibility.Context{
		Questions: map[string]any{
			"occupation_status": "Student",
			"has_scholarship":   "Yes",
		},
	}

	ok, err := eval.Eval("student", `occupation_status == "Student" && (has_scholarship || sponsored)`, ctx)
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected composed rule to hold")
	}
}

func TestEvaluatorEmptyRuleIsVisible(t *testing.T) {
	t.Parallel()

	eval := New()

	ok, err := eval.Eval("anything", "   ", visibility.Context{})
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatal("empty rule must mean always visible")
	}
}

func TestEvaluatorMalformedRule(t *testing.T) {
	t.Parallel()

	eval := New()

	if _, err := eval.Eval("broken", `occupation_status = "Employee"`, visibility.Context{}); err == nil {
		t.Fatal("expected error for single '='")
	}
	if _, err := eval.Eval("broken", `occupation_status == `, visibility.Context{}); err == nil {
		t.Fatal("expected error for missing literal")
	}
	if _, err := eval.Eval("broken", `name ~= true`, visibility.Context{}); err == nil {
		t.Fatal("expected error for '~=' with bool literal")
	}
}

func TestEvaluatorNestedLookup(t *testing.T) {
	t.Parallel()

	eval := New()

	ok, err := eval.Eval("sponsor", `sponsor_info.relationship == "Parent"`, visibility.Context{
		Questions: map[string]any{
			"sponsor_info": map[string]any{"relationship": "Parent"},
		},
	})
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected dotted lookup into nested map")
	}
}
