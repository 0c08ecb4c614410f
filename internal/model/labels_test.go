package model

import "testing"

func TestDefaultLabeler(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"hotel_name":       "Hotel Name",
		"inviting-company": "Inviting Company",
		"companyName":      "Company Name",
		"":                 "",
	}
	for input, want := range cases {
		if got := DefaultLabeler(input); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDeriveLabelPrefersPlaceholder(t *testing.T) {
	t.Parallel()

	if got := DeriveLabel("hotel_name", "Hotel Name *", ""); got != "Hotel Name" {
		t.Fatalf("expected stripped placeholder, got %q", got)
	}
	if got := DeriveLabel("hotel_name", "", "Hotel"); got != "Hotel" {
		t.Fatalf("expected explicit label, got %q", got)
	}
	if got := DeriveLabel("hotel_name", "", ""); got != "Hotel Name" {
		t.Fatalf("expected humanized id, got %q", got)
	}
}

func TestDeriveLabelZipRule(t *testing.T) {
	t.Parallel()

	// The relabel applies regardless of declared placeholder text.
	if got := DeriveLabel("company_zip", "ZIP *", ""); got != "Postal Code" {
		t.Fatalf("expected Postal Code, got %q", got)
	}
	if got := DeriveLabel("inviting_zip_code", "", ""); got != "Postal Code" {
		t.Fatalf("expected Postal Code, got %q", got)
	}
}

func TestIsMandatory(t *testing.T) {
	t.Parallel()

	if !IsMandatory("Hotel Name *", "") {
		t.Fatal("trailing asterisk must flag mandatory")
	}
	if !IsMandatory("", "Company (mandatory)") {
		t.Fatal("mandatory suffix must flag mandatory")
	}
	if IsMandatory("Hotel Name", "Company") {
		t.Fatal("plain text must not flag mandatory")
	}
}

func TestStripMandatoryMarkerRepeats(t *testing.T) {
	t.Parallel()

	if got := StripMandatoryMarker("Sponsor Name (mandatory) *"); got != "Sponsor Name" {
		t.Fatalf("expected all markers stripped, got %q", got)
	}
}
