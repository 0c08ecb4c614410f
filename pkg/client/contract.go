package client

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

//go:embed backend_contract.yaml
var contractYAML []byte

// Contract loads and validates the embedded backend contract document.
func Contract() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(contractYAML)
	if err != nil {
		return nil, fmt.Errorf("client: parse backend contract: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("client: invalid backend contract: %w", err)
	}
	return doc, nil
}

// contractValidator checks outgoing requests against the embedded contract
// before they leave the client.
type contractValidator struct {
	router routers.Router
}

func newContractValidator() (*contractValidator, error) {
	doc, err := Contract()
	if err != nil {
		return nil, err
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build contract router: %w", err)
	}
	return &contractValidator{router: router}, nil
}

// validate runs request validation against a clone so the original body
// reader is left untouched for the actual send.
func (v *contractValidator) validate(req *http.Request, payload []byte) error {
	clone := req.Clone(req.Context())
	if payload != nil {
		clone.Body = io.NopCloser(bytes.NewReader(payload))
		clone.ContentLength = int64(len(payload))
	}

	route, pathParams, err := v.router.FindRoute(clone)
	if err != nil {
		return fmt.Errorf("no contract route for %s %s: %w", req.Method, req.URL.Path, err)
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    clone,
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
	}
	return openapi3filter.ValidateRequest(req.Context(), input)
}
