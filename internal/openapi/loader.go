package openapi

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/pkg/errors"
)

// LoadOpenAPISpec loads an openAPI file, parses it and validates data.
func LoadOpenAPISpec(ctx context.Context, location string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = true

	doc, err := loader.LoadFromFile(location)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't load OpenAPI file")
	}

	err = doc.Validate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't validate OpenAPI spec")
	}

	return doc, nil
}

// ServerURL returns the URL of the first server declared in the document.
func ServerURL(doc *openapi3.T) string {
	for _, server := range doc.Servers {
		if server != nil && server.URL != "" {
			return server.URL
		}
	}

	return ""
}
