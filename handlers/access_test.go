package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"p9e.in/treeflow/routes"
)

func TestRequireAuth(t *testing.T) {
	env := newTestEnv(t, routes.Options{RequireAuth: true})
	env.seedCatalog(t)

	token := func(role string) string {
		tok, err := env.auth.GenerateToken(1, role)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		role   string
		want   int
	}{
		{"no token", http.MethodGet, "/api/arboles-censados", nil, "", http.StatusUnauthorized},
		{"lookups need a token too", http.MethodGet, "/api/comunas", nil, "", http.StatusUnauthorized},
		{"empresa reads", http.MethodGet, "/api/arboles-censados", nil, "empresa", http.StatusOK},
		{"empresa cannot census", http.MethodPost, "/api/arboles", censusTreeBody(), "empresa", http.StatusForbidden},
		{"inspector censuses", http.MethodPost, "/api/arboles", censusTreeBody(), "inspector", http.StatusCreated},
		{"inspector cannot order", http.MethodPost, "/api/ordenes", orderBody(1, "2024-01-01"), "inspector", http.StatusForbidden},
		{"gobierno orders", http.MethodPost, "/api/ordenes", orderBody(1, "2024-01-01"), "gobierno", http.StatusCreated},
		{"empresa updates order", http.MethodPut, "/api/ordenes-empresa/1", map[string]interface{}{"estado_id": 2}, "empresa", http.StatusOK},
		{"empresa cannot delete order", http.MethodDelete, "/api/ordenes/1", nil, "empresa", http.StatusForbidden},
		{"unknown role", http.MethodGet, "/api/comunas", nil, "visitante", http.StatusForbidden},
		{"admin deletes", http.MethodDelete, "/api/ordenes/1", nil, "admin", http.StatusOK},
		{"auth routes stay public", http.MethodPost, "/api/auth/request-reset", map[string]interface{}{"email": "x@example.com"}, "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := ""
			if tt.role != "" {
				tok = token(tt.role)
			}
			rec := env.do(t, tt.method, tt.path, tt.body, tok)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestOpenRoutesWithoutRequireAuth(t *testing.T) {
	env := newTestEnv(t, routes.Options{})
	rec := env.do(t, http.MethodGet, "/api/ordenes", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSystemRoutes(t *testing.T) {
	env := newTestEnv(t, routes.Options{})

	rec := env.do(t, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/swagger/doc.json", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Treeflow API")

	rec = env.do(t, http.MethodGet, "/api/arboles-censados", nil, "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
