// Package client implements the REST collaborator the viewer fetches records
// and documents from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-recordview/pkg/documents"
	"github.com/goliatone/go-recordview/pkg/record"
)

// Record resource families the backend recognises.
const (
	RecordTypeVisa         = "visa"
	RecordTypeConsultation = "consultation"
)

// Option customises the client configuration.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithContractValidation validates every outgoing request against the
// embedded backend contract before sending it. Intended for tests and
// staging; a contract violation is returned as an error instead of reaching
// the backend.
func WithContractValidation() Option {
	return func(c *Client) {
		c.validateContract = true
	}
}

// Client talks to the record backend. All methods honor the caller's
// context; outbound requests carry no additional timeout, so cancellation
// is entirely the caller's decision.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	validateContract bool
	validator        *contractValidator
	validatorErr     error
}

// New constructs a Client for the given backend base URL.
func New(baseURL string, options ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("client: base url is required")
	}

	c := &Client{
		baseURL:    trimmed,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.validateContract {
		c.validator, c.validatorErr = newContractValidator()
		if c.validatorErr != nil {
			return nil, fmt.Errorf("client: load backend contract: %w", c.validatorErr)
		}
	}
	return c, nil
}

type recordEnvelope struct {
	Status  string           `json:"status"`
	Data    record.RawRecord `json:"data"`
	Message string           `json:"message"`
}

type statusEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FetchRecord retrieves one raw client record.
func (c *Client) FetchRecord(ctx context.Context, recordType, id string) (record.RawRecord, error) {
	if err := validateIdentifiers(recordType, id); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/records/%s/%s", c.baseURL, url.PathEscape(recordType), url.PathEscape(id))
	body, err := c.do(ctx, http.MethodGet, endpoint, "", nil)
	if err != nil {
		return nil, err
	}

	var envelope recordEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("client: decode record envelope: %w", err)
	}
	if envelope.Status != "success" {
		return nil, backendError("fetch record", envelope.Message)
	}
	if envelope.Data == nil {
		return record.RawRecord{}, nil
	}
	return envelope.Data, nil
}

// UpdateFields sends a bulk field update. Keys are internal snake_case names;
// they are converted to the camelCase form the backend expects. The
// conversion is a heuristic inverse of the normalizer and does not round-trip
// alias-only keys; see DESIGN.md.
func (c *Client) UpdateFields(ctx context.Context, recordType, id string, updates map[string]any) error {
	if err := validateIdentifiers(recordType, id); err != nil {
		return err
	}
	if len(updates) == 0 {
		return errors.New("client: no updates supplied")
	}

	converted := make(map[string]any, len(updates))
	for key, value := range updates {
		converted[record.CamelCase(key)] = value
	}

	payload, err := json.Marshal(map[string]any{"updates": converted})
	if err != nil {
		return fmt.Errorf("client: encode updates: %w", err)
	}

	endpoint := fmt.Sprintf("%s/records/%s/%s/bulk", c.baseURL, url.PathEscape(recordType), url.PathEscape(id))
	body, err := c.do(ctx, http.MethodPatch, endpoint, "application/json", payload)
	if err != nil {
		return err
	}
	return decodeStatus("update fields", body)
}

// List implements documents.Lister against the backend listing endpoint.
func (c *Client) List(ctx context.Context, req documents.ListRequest) ([]documents.FileReference, error) {
	query := url.Values{}
	query.Set("id", req.RecordID)
	query.Set("type", req.RecordType)
	query.Set("category", req.Category)

	body, err := c.do(ctx, http.MethodGet, c.baseURL+"/documents?"+query.Encode(), "", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Status    string            `json:"status"`
		Documents []documentPayload `json:"documents"`
		Message   string            `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("client: decode document listing: %w", err)
	}
	if envelope.Status != "success" {
		return nil, backendError("list documents", envelope.Message)
	}

	out := make([]documents.FileReference, 0, len(envelope.Documents))
	for _, doc := range envelope.Documents {
		out = append(out, doc.fileReference())
	}
	return out, nil
}

// documentPayload tolerates the field-name drift of the listing endpoint:
// older deployments send original_filename/file_path, newer ones name/url.
type documentPayload struct {
	Name             string `json:"name"`
	OriginalFilename string `json:"original_filename"`
	Filename         string `json:"filename"`
	URL              string `json:"url"`
	FilePath         string `json:"file_path"`
	UploadDate       string `json:"upload_date"`
	FileSize         int64  `json:"file_size"`
	Source           string `json:"source"`
}

func (p documentPayload) fileReference() documents.FileReference {
	name := firstNonEmpty(p.Name, p.OriginalFilename, p.Filename)
	source := documents.SourceAdmin
	if strings.EqualFold(p.Source, string(documents.SourceClient)) {
		source = documents.SourceClient
	}
	return documents.FileReference{
		Name:       name,
		URL:        firstNonEmpty(p.URL, p.FilePath),
		UploadedAt: p.UploadDate,
		SizeBytes:  p.FileSize,
		Source:     source,
	}
}

// UploadRequest describes one multipart document upload.
type UploadRequest struct {
	RecordID   string
	RecordType string
	Category   string
	Filename   string
	File       io.Reader
}

// UploadDocument sends a multipart upload to the backend.
func (c *Client) UploadDocument(ctx context.Context, req UploadRequest) error {
	if err := validateIdentifiers(req.RecordType, req.RecordID); err != nil {
		return err
	}
	if req.File == nil || strings.TrimSpace(req.Filename) == "" {
		return errors.New("client: upload requires a file and filename")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range map[string]string{
		"id":       req.RecordID,
		"type":     req.RecordType,
		"category": req.Category,
	} {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("client: encode upload field %s: %w", key, err)
		}
	}
	part, err := writer.CreateFormFile("file", req.Filename)
	if err != nil {
		return fmt.Errorf("client: create upload part: %w", err)
	}
	if _, err := io.Copy(part, req.File); err != nil {
		return fmt.Errorf("client: copy upload payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("client: finalize upload: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, c.baseURL+"/documents/upload", writer.FormDataContentType(), buf.Bytes())
	if err != nil {
		return err
	}
	return decodeStatus("upload document", body)
}

// DeleteRequest identifies a backend-hosted document to remove.
type DeleteRequest struct {
	RecordID   string `json:"id"`
	RecordType string `json:"type"`
	FileID     string `json:"file_id"`
	Category   string `json:"category"`
}

// DeleteDocument removes a backend-hosted document.
func (c *Client) DeleteDocument(ctx context.Context, req DeleteRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("client: encode delete request: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, c.baseURL+"/documents/delete", "application/json", payload)
	if err != nil {
		return err
	}
	return decodeStatus("delete document", body)
}

// RewriteRequest removes a client-sourced file by rewriting the inline record
// field that references it.
type RewriteRequest struct {
	RecordID  string `json:"id"`
	FieldName string `json:"field_name"`
	FileName  string `json:"file_name"`
	NewValue  string `json:"new_value"`
}

// RewriteClientDocumentField rewrites an inline document field, the delete
// path for client-sourced files.
func (c *Client) RewriteClientDocumentField(ctx context.Context, req RewriteRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("client: encode rewrite request: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, c.baseURL+"/documents/client-delete", "application/json", payload)
	if err != nil {
		return err
	}
	return decodeStatus("rewrite document field", body)
}

func (c *Client) do(ctx context.Context, method, endpoint, contentType string, payload []byte) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	if c.validator != nil {
		if err := c.validator.validate(req, payload); err != nil {
			return nil, fmt.Errorf("client: request violates backend contract: %w", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: %s %s: %w", method, endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("client: %s %s: unexpected status %s", method, endpoint, resp.Status)
	}
	return data, nil
}

func decodeStatus(operation string, body []byte) error {
	var envelope statusEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("client: decode %s response: %w", operation, err)
	}
	if envelope.Status != "success" {
		return backendError(operation, envelope.Message)
	}
	return nil
}

func backendError(operation, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "backend reported an error"
	}
	return fmt.Errorf("client: %s: %s", operation, message)
}

func validateIdentifiers(recordType, id string) error {
	if recordType != RecordTypeVisa && recordType != RecordTypeConsultation {
		return fmt.Errorf("client: unknown record type %q", recordType)
	}
	if strings.TrimSpace(id) == "" {
		return errors.New("client: record id is required")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

var _ documents.Lister = (*Client)(nil)
