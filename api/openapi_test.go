package api_test

import (
	"testing"

	"restaurant/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(t.Context())
	require.NoError(t, err)

	for _, path := range []string{
		"/api/menu",
		"/api/menu/search",
		"/api/menu/{id}",
		"/api/menu/{id}/availability",
		"/api/orders",
		"/api/orders/{id}",
		"/api/orders/{id}/status",
		"/api/analytics/top-sellers",
		"/api/analytics/summary",
		"/api/health",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestRegisterSwagger(t *testing.T) {
	doc, err := api.Load(t.Context())
	require.NoError(t, err)

	require.NoError(t, api.RegisterSwagger(doc))
	require.NoError(t, api.RegisterSwagger(doc))

	served, err := swag.ReadDoc()
	require.NoError(t, err)
	assert.Contains(t, served, `"openapi":"3.0.3"`)
}
