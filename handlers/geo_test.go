package handlers_test

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"p9e.in/treeflow/models"
	"p9e.in/treeflow/routes"
)

// Centro covers tree 1, tree 2 lies outside and tree 3 has no coordinates.
const centroArea = `{"coordinates":[{"lat":-34.59,"lng":-58.39},{"lat":-34.59,"lng":-58.37},{"lat":-34.61,"lng":-58.37},{"lat":-34.61,"lng":-58.39}]}`

func seedMappedTrees(t *testing.T, env *testEnv) {
	t.Helper()
	env.seedCatalog(t)
	env.createID(t, "/api/arboles", withFields(censusTreeBody(), "latitud", -34.6037, "longitud", -58.3816))
	env.createID(t, "/api/arboles", withFields(censusTreeBody(),
		"latitud", -34.7, "longitud", -58.5, "especie_id", 2, "altura_arbol", "10", "dap", "0.55"))
	id := env.createID(t, "/api/arboles", withFields(censusTreeBody(), "comuna_id", 2))
	require.NoError(t, env.db.Model(&models.CensusTree{}).Where("id = ?", id).Update("altura_arbol", nil).Error)
}

func TestGeoJSONArea(t *testing.T) {
	env := newTestEnv(t, routes.Options{})
	seedMappedTrees(t, env)

	tests := []struct {
		name  string
		query string
		want  int
		code  int
	}{
		{"all mapped trees", "", 2, http.StatusOK},
		{"inside area", "?area=" + url.QueryEscape(centroArea), 1, http.StatusOK},
		{"area and filter", "?especie_id=2&area=" + url.QueryEscape(centroArea), 0, http.StatusOK},
		{"bad area", "?area=" + url.QueryEscape(`{"coordinates":[]}`), 0, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/api/arboles-censados/geojson"+tt.query, nil, "")
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
			if tt.code != http.StatusOK {
				return
			}
			var fc struct {
				Features []map[string]interface{} `json:"features"`
			}
			decode(t, rec, &fc)
			assert.Len(t, fc.Features, tt.want)
		})
	}
}

func TestCensusTreesKMZ(t *testing.T) {
	env := newTestEnv(t, routes.Options{})
	seedMappedTrees(t, env)

	rec := env.do(t, http.MethodGet, "/api/arboles-censados/kmz", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/vnd.google-earth.kmz", rec.Header().Get("Content-Type"))
	assert.Regexp(t, `filename="arboles_censados_\d{8}_\d{6}\.kmz"`, rec.Header().Get("Content-Disposition"))

	body := rec.Body.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "doc.kml", zr.File[0].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	require.NoError(t, err)

	var doc struct {
		Document struct {
			Placemarks []struct {
				ID    string `xml:"id,attr"`
				Name  string `xml:"name"`
				Point struct {
					Coordinates string `xml:"coordinates"`
				} `xml:"Point"`
				Data []struct {
					Name  string `xml:"name,attr"`
					Value string `xml:"value"`
				} `xml:"ExtendedData>Data"`
			} `xml:"Placemark"`
		} `xml:"Document"`
	}
	require.NoError(t, xml.Unmarshal(raw, &doc))
	require.Len(t, doc.Document.Placemarks, 2)

	first := doc.Document.Placemarks[0]
	assert.Equal(t, "arbol-1", first.ID)
	assert.Equal(t, "Árbol 1", first.Name)
	assert.Equal(t, "-58.3816,-34.6037", first.Point.Coordinates)
	assert.Contains(t, first.Data, struct {
		Name  string `xml:"name,attr"`
		Value string `xml:"value"`
	}{"especie", "Fresno"})
}

func TestCensusTreeStats(t *testing.T) {
	env := newTestEnv(t, routes.Options{})
	seedMappedTrees(t, env)

	rec := env.do(t, http.MethodGet, "/api/arboles-censados/estadisticas", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stats struct {
		Total      int `json:"total"`
		PorEspecie []struct {
			Label string `json:"label"`
			Count int    `json:"count"`
		} `json:"por_especie"`
		AlturaArbol struct {
			Count int     `json:"count"`
			Mean  float64 `json:"mean"`
			Max   float64 `json:"max"`
		} `json:"altura_arbol"`
		ConCoordenadas int `json:"con_coordenadas"`
	}
	decode(t, rec, &stats)
	assert.Equal(t, 3, stats.Total)
	require.Len(t, stats.PorEspecie, 2)
	assert.Equal(t, "Fresno", stats.PorEspecie[0].Label)
	assert.Equal(t, 2, stats.PorEspecie[0].Count)
	assert.Equal(t, 2, stats.AlturaArbol.Count, "tree 3 has no height")
	assert.InDelta(t, 9.25, stats.AlturaArbol.Mean, 1e-9)
	assert.InDelta(t, 10, stats.AlturaArbol.Max, 1e-9)
	assert.Equal(t, 2, stats.ConCoordenadas)

	rec = env.do(t, http.MethodGet, "/api/arboles-censados/estadisticas?comuna_id=2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
	assert.Contains(t, rec.Body.String(), `"altura_arbol":null`)
}
