package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"p9e.in/treeflow/config"
	"p9e.in/treeflow/handlers"
	"p9e.in/treeflow/middleware"
	"p9e.in/treeflow/routes"
	"p9e.in/treeflow/storage"
)

type testEnv struct {
	db        *gorm.DB
	auth      *middleware.Auth
	uploadDir string
	router    http.Handler
}

// newTestEnv builds the full router over a fresh on-disk SQLite database
// with a single pooled connection.
func newTestEnv(t *testing.T, opts routes.Options) *testEnv {
	t.Helper()
	return newPooledTestEnv(t, opts, 1)
}

// newPooledTestEnv lets requests use up to poolMax connections at once.
// Writers wait on each other through SQLite's busy timeout.
func newPooledTestEnv(t *testing.T, opts routes.Options, poolMax int) *testEnv {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{
		DBDriver:      config.DriverSQLite,
		DBDatabase:    filepath.Join(dir, "treeflow.db") + "?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)",
		DBPoolMax:     poolMax,
		DBPoolMin:     1,
		DBIdleTimeout: time.Minute,
		DBAutoMigrate: true,
		LogLevel:      "error",
	}
	db, err := config.OpenDatabase(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { config.CloseDatabase(db) })

	uploadDir := filepath.Join(dir, "uploads")
	store, err := storage.NewLocal(uploadDir)
	require.NoError(t, err)

	auth := middleware.NewAuth("test-secret", time.Hour)
	opts.UploadDir = uploadDir
	return &testEnv{
		db:        db,
		auth:      auth,
		uploadDir: uploadDir,
		router:    routes.RegisterRoutes(handlers.New(db, store, auth), auth, opts),
	}
}

// seedLookup inserts labels into a reference table; ids start at 1.
func (e *testEnv) seedLookup(t *testing.T, table, column string, labels ...string) {
	t.Helper()
	for _, l := range labels {
		require.NoError(t, e.db.Table(table).Create(map[string]interface{}{column: l}).Error)
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) doMultipart(t *testing.T, method, path string, fields map[string]string, fileName string, file []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("foto", fileName)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

// seedCatalog fills the lookups a census tree refers to.
func (e *testEnv) seedCatalog(t *testing.T) {
	t.Helper()
	e.seedLookup(t, "comunas", "nombre", "Centro", "Norte")
	e.seedLookup(t, "calles", "nombre", "San Martín", "Belgrano")
	e.seedLookup(t, "referencias", "descripcion", "Frente", "Esquina")
	e.seedLookup(t, "especies", "nombre", "Fresno", "Jacarandá")
	e.seedLookup(t, "estados_fitosanitarios", "estado", "Bueno", "Malo")
	e.seedLookup(t, "fases_vitales", "fase", "Joven")
	e.seedLookup(t, "inclinaciones", "nivel", "Leve", "Severa")
	e.seedLookup(t, "ahuecamientos", "nivel", "Nulo", "Alto")
	e.seedLookup(t, "estados_plantera", "estado", "Sana")
	e.seedLookup(t, "ancho_acera", "ancho", "2 m")
	e.seedLookup(t, "tareas", "descripcion", "Poda")
	e.seedLookup(t, "items", "descripcion", "Despeje de luminaria")
	e.seedLookup(t, "contratistas", "nombre", "Verde SA", "Arbolar SRL")
}

func censusTreeBody() map[string]interface{} {
	return map[string]interface{}{
		"comuna_id":               1,
		"calle_id":                1,
		"altura":                  1234,
		"referencia_id":           1,
		"especie_id":              1,
		"altura_arbol":            "8.5",
		"dap":                     "0.45",
		"estado_fitosanitario_id": 1,
		"fase_vital_id":           1,
		"inclinacion_id":          1,
		"ahuecamiento_id":         1,
		"estado_plantera_id":      1,
		"ancho_acera_id":          1,
		"observaciones":           "Sin novedades",
	}
}

func withFields(base map[string]interface{}, kv ...interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base))
	for k, v := range base {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		key := kv[i].(string)
		if kv[i+1] == nil {
			delete(out, key)
			continue
		}
		out[key] = kv[i+1]
	}
	return out
}

type apiResponse struct {
	Success bool                   `json:"success"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func (e *testEnv) createID(t *testing.T, path string, body interface{}) int64 {
	t.Helper()
	rec := e.do(t, http.MethodPost, path, body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp apiResponse
	decode(t, rec, &resp)
	return int64(resp.Data["id"].(float64))
}

func toString(v interface{}) string { return fmt.Sprint(v) }
