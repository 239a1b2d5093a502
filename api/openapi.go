// Package api embeds the OpenAPI document of the HTTP API. The same document
// drives request validation and the Swagger UI.
package api

import (
	"context"
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	openapi3.SchemaErrorDetailsDisabled = true

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerOnce sync.Once

// RegisterSwagger publishes doc under swag.Name, where echo-swagger looks it up.
// Only the first call has an effect.
func RegisterSwagger(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	return nil
}
