package handlers_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"p9e.in/treeflow/models"
	"p9e.in/treeflow/routes"
)

func TestCreateCensusTreeValidation(t *testing.T) {
	tests := []struct {
		name   string
		body   map[string]interface{}
		status int
		field  string
	}{
		{"complete", censusTreeBody(), http.StatusCreated, ""},
		{"missing referencia_id", withFields(censusTreeBody(), "referencia_id", nil), http.StatusBadRequest, "referencia_id"},
		{"missing observaciones", withFields(censusTreeBody(), "observaciones", nil), http.StatusBadRequest, "observaciones"},
		{"blank especie_id", withFields(censusTreeBody(), "especie_id", "  "), http.StatusBadRequest, "especie_id"},
		{"negative altura", withFields(censusTreeBody(), "altura", -3), http.StatusBadRequest, "altura"},
		{"comuna_id overflowing int64", withFields(censusTreeBody(), "comuna_id", "99999999999999999999"), http.StatusBadRequest, "comuna_id"},
		{"non numeric dap", withFields(censusTreeBody(), "dap", "grueso"), http.StatusBadRequest, "dap"},
		{"latitude out of range", withFields(censusTreeBody(), "latitud", 123.4), http.StatusBadRequest, "latitud"},
		{"with coordinates", withFields(censusTreeBody(), "latitud", -34.6, "longitud", -58.4), http.StatusCreated, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, routes.Options{})
			rec := env.do(t, http.MethodPost, "/api/arboles", tt.body, "")
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			if tt.status == http.StatusCreated {
				assert.Equal(t, int64(1), env.count(t, &models.CensusTree{}))
				var resp apiResponse
				decode(t, rec, &resp)
				assert.True(t, resp.Success)
				assert.Equal(t, "Árbol registrado exitosamente", resp.Message)
				assert.EqualValues(t, 1, resp.Data["id"])
				return
			}

			assert.Equal(t, int64(0), env.count(t, &models.CensusTree{}))
			assert.Contains(t, rec.Body.String(), `"code":"VALIDATION_ERROR"`)
			assert.Contains(t, rec.Body.String(), `"field":"`+tt.field+`"`)
		})
	}
}

func TestCreateCensusTreeWithPhoto(t *testing.T) {
	env := newTestEnv(t, routes.Options{})

	fields := map[string]string{}
	for k, v := range censusTreeBody() {
		fields[k] = toString(v)
	}
	rec := env.doMultipart(t, http.MethodPost, "/api/arboles", fields, "fresno 1.jpg", []byte("jpeg bytes"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var tree models.CensusTree
	require.NoError(t, env.db.First(&tree).Error)
	require.NotNil(t, tree.Foto)
	assert.Regexp(t, `^\d{8}-\d{6}-[0-9a-f]{8}-fresno_1\.jpg$`, *tree.Foto)

	stored, err := os.ReadFile(filepath.Join(env.uploadDir, *tree.Foto))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(stored))

	served := env.do(t, http.MethodGet, "/uploads/"+*tree.Foto, nil, "")
	assert.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, "jpeg bytes", served.Body.String())
}

func TestGetUpdateDeleteCensusTree(t *testing.T) {
	env := newTestEnv(t, routes.Options{})
	id := env.createID(t, "/api/arboles", withFields(censusTreeBody(), "latitud", -34.6, "longitud", -58.4))

	rec := env.do(t, http.MethodGet, "/api/arboles/1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.CensusTree
	decode(t, rec, &got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, int64(1234), got.Altura)
	require.NotNil(t, got.Observaciones)
	assert.Equal(t, "Sin novedades", *got.Observaciones)

	// Only the address and species are required; the rest is cleared.
	rec = env.do(t, http.MethodPut, "/api/arboles/1", map[string]interface{}{
		"comuna_id": 2, "calle_id": 2, "altura": 99, "especie_id": 2, "foto": "previa.jpg",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.CensusTree
	require.NoError(t, env.db.First(&updated, id).Error)
	assert.Equal(t, int64(2), updated.ComunaID)
	assert.Equal(t, int64(99), updated.Altura)
	assert.Nil(t, updated.ReferenciaID)
	assert.Nil(t, updated.Observaciones)
	assert.Nil(t, updated.Latitud)
	require.NotNil(t, updated.Foto)
	assert.Equal(t, "previa.jpg", *updated.Foto)

	rec = env.do(t, http.MethodPut, "/api/arboles/1", map[string]interface{}{"comuna_id": 2}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/arboles/1", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), env.count(t, &models.CensusTree{}))

	rec = env.do(t, http.MethodGet, "/api/arboles/1", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Árbol no encontrado")
}

func TestMissingIDReturnsNotFound(t *testing.T) {
	env := newTestEnv(t, routes.Options{})

	plantingBody := map[string]interface{}{
		"comuna_id": 1, "calle_id": 1, "altura": 10, "referencia_id": 1,
		"tipo_plantacion_id": 1, "especie_id": 1, "dimension_plantera_id": 1,
	}
	tests := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodPut, "/api/arboles/999", map[string]interface{}{"comuna_id": 1, "calle_id": 1, "altura": 1, "especie_id": 1}},
		{http.MethodPut, "/api/plantaciones/999", plantingBody},
		{http.MethodPut, "/api/mantenimientos/999", map[string]interface{}{"arbol_id": 1, "tarea_id": 1, "item_id": 1}},
		{http.MethodPut, "/api/ordenes/999", map[string]interface{}{"estado_id": 1, "contratista_id": 1, "fecha_limite": "2024-05-01"}},
		{http.MethodPut, "/api/ordenes-empresa/999", map[string]interface{}{"estado_id": 2}},
		{http.MethodDelete, "/api/arboles/999", nil},
		{http.MethodDelete, "/api/plantaciones/999", nil},
		{http.MethodDelete, "/api/mantenimientos/999", nil},
		{http.MethodDelete, "/api/ordenes/999", nil},
		{http.MethodGet, "/api/plantaciones/999", nil},
		{http.MethodGet, "/api/mantenimientos/999", nil},
		{http.MethodGet, "/api/ordenes/999", nil},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.path, tt.body, "")
			assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
		})
	}

	t.Run("non numeric id is not routed", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/arboles/1;DROP", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListCensusTreesFilters(t *testing.T) {
	env := newTestEnv(t, routes.Options{})
	env.seedCatalog(t)

	// comuna, especie, inclinacion for trees 1..4
	trees := [][3]int{{1, 1, 1}, {1, 2, 1}, {2, 1, 2}, {2, 2, 2}}
	for _, tr := range trees {
		env.createID(t, "/api/arboles", withFields(censusTreeBody(),
			"comuna_id", tr[0], "especie_id", tr[1], "inclinacion_id", tr[2]))
	}

	tests := []struct {
		query string
		want  []int64
	}{
		{"", []int64{1, 2, 3, 4}},
		{"?comuna_id=1", []int64{1, 2}},
		{"?especie_id=2", []int64{2, 4}},
		{"?comuna_id=2&especie_id=1", []int64{3}},
		{"?nivel_inclinaciones_id=2", []int64{3, 4}},
		{"?comuna_id=1&nivel_inclinaciones_id=2", []int64{}},
		{"?comuna_id=abc", []int64{1, 2, 3, 4}},
		{"?unknown=1", []int64{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run("census"+tt.query, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/api/arboles-censados"+tt.query, nil, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var rows []models.CensusTreeRow
			decode(t, rec, &rows)
			ids := []int64{}
			for _, r := range rows {
				ids = append(ids, r.ArbolID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	rec := env.do(t, http.MethodGet, "/api/arboles-censados?comuna_id=2&especie_id=2", nil, "")
	var rows []models.CensusTreeRow
	decode(t, rec, &rows)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "Norte", *row.Comuna)
	assert.Equal(t, "Jacarandá", *row.Especie)
	assert.Equal(t, "Severa", *row.Inclinacion)
	assert.Equal(t, "Frente", *row.Referencia)
	require.NotNil(t, row.FechaCensado)
	assert.Len(t, row.FechaCensado.String(), 10)

	rec = env.do(t, http.MethodGet, "/api/arboles-filtrados?altura=1234&comuna_id=1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []models.CensusTreeSummary
	decode(t, rec, &summaries)
	require.Len(t, summaries, 2)
	assert.Equal(t, "San Martín", *summaries[0].Calle)
}

func TestListCensusTreesEmpty(t *testing.T) {
	env := newTestEnv(t, routes.Options{})
	rec := env.do(t, http.MethodGet, "/api/arboles-censados", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
