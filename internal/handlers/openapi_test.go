package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type openAPIDoc struct {
	Paths map[string]map[string]any `yaml:"paths"`
}

// каждый маршрут роутера описан в /openapi.yaml
func TestOpenAPI_DocumentsEveryRoute(t *testing.T) {
	env := newTestEnv(t, nil)

	rr := env.do(t, http.MethodGet, "/openapi.yaml", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/yaml", rr.Header().Get("Content-Type"))

	var doc openAPIDoc
	require.NoError(t, yaml.Unmarshal(rr.Body.Bytes(), &doc))

	router, ok := env.router.(chi.Routes)
	require.True(t, ok)
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		route = strings.ReplaceAll(route, "/*", "")
		if route != "/" && strings.HasSuffix(route, "/") {
			route = strings.TrimSuffix(route, "/")
		}
		ops, found := doc.Paths[route]
		if assert.True(t, found, "route %s not documented", route) {
			_, found = ops[strings.ToLower(method)]
			assert.True(t, found, "%s %s not documented", method, route)
		}
		return nil
	})
	require.NoError(t, err)
}
