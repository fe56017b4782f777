package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"p9e.in/treeflow/models"
	"p9e.in/treeflow/routes"
)

func TestLookupRoutes(t *testing.T) {
	env := newTestEnv(t, routes.Options{})
	env.seedLookup(t, "comunas", "nombre", "Centro")
	env.seedLookup(t, "fases_vitales", "fase", "Joven", "Adulto")

	tests := []struct {
		path string
		want string
	}{
		{"/api/comunas", `[{"id":1,"nombre":"Centro"}]`},
		{"/api/fases-vitales", `[{"fase":"Joven","id":1},{"fase":"Adulto","id":2}]`},
		{"/api/especies", `[]`},
		{"/api/estados", `[{"id":1,"nombre":"Encomendado"},{"id":2,"nombre":"En proceso"},{"id":3,"nombre":"Finalizado"},{"id":4,"nombre":"Cancelado"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, tt.path, nil, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestEveryLookupIsRouted(t *testing.T) {
	env := newTestEnv(t, routes.Options{})
	for _, l := range models.Lookups {
		rec := env.do(t, http.MethodGet, "/api/"+l.Path, nil, "")
		assert.Equal(t, http.StatusOK, rec.Code, l.Path)
	}
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t, routes.Options{})
	rec := env.do(t, http.MethodGet, "/api/no-existe", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ruta no encontrada")
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, routes.Options{RequireAuth: true})
	rec := env.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, rec.Body.String())
}
