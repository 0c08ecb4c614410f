package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-recordview/pkg/client"
)

func TestContractDocumentLoads(t *testing.T) {
	t.Parallel()

	doc, err := client.Contract()
	if err != nil {
		t.Fatalf("Contract: %v", err)
	}
	for _, path := range []string{
		"/records/{type}/{id}",
		"/records/{type}/{id}/bulk",
		"/documents",
		"/documents/upload",
		"/documents/delete",
		"/documents/client-delete",
	} {
		if doc.Paths.Find(path) == nil {
			t.Errorf("contract is missing path %s", path)
		}
	}
}

func TestContractValidationAcceptsClientRequests(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   map[string]any{"firstName": "Ana"},
		})
	}))
	defer server.Close()

	c, err := client.New(server.URL, client.WithContractValidation())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.FetchRecord(context.Background(), client.RecordTypeVisa, "42"); err != nil {
		t.Fatalf("FetchRecord: %v", err)
	}
	err = c.UpdateFields(context.Background(), client.RecordTypeVisa, "42", map[string]any{"first_name": "Ana"})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	err = c.UploadDocument(context.Background(), client.UploadRequest{
		RecordID:   "42",
		RecordType: client.RecordTypeVisa,
		Category:   "bookings",
		Filename:   "itinerary.pdf",
		File:       strings.NewReader("pdf-bytes"),
	})
	if err != nil {
		t.Fatalf("UploadDocument: %v", err)
	}
}

func TestContractValidationRejectsBadPayload(t *testing.T) {
	t.Parallel()

	var reached bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "success"})
	}))
	defer server.Close()

	c, err := client.New(server.URL, client.WithContractValidation())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// field_name is required by the contract.
	err = c.RewriteClientDocumentField(context.Background(), client.RewriteRequest{
		RecordID: "42",
		FileName: "old.pdf",
	})
	if err == nil {
		t.Fatal("expected contract violation")
	}
	if !strings.Contains(err.Error(), "backend contract") {
		t.Errorf("error = %v, want contract violation", err)
	}
	if reached {
		t.Error("request reached the backend despite contract violation")
	}
}
