package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"p9e.in/treeflow/logging"
	"p9e.in/treeflow/metrics"
	"p9e.in/treeflow/middleware"
	"p9e.in/treeflow/pkg/apperr"
	"p9e.in/treeflow/pkg/form"
	"p9e.in/treeflow/storage"
)

// Handler serves every API route over one database handle.
type Handler struct {
	db    *gorm.DB
	store storage.Store
	auth  *middleware.Auth
}

func New(db *gorm.DB, store storage.Store, auth *middleware.Auth) *Handler {
	return &Handler{db: db, store: store, auth: auth}
}

// Response is the acknowledgment sent by create, update and delete routes.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type createdID struct {
	ID int64 `json:"id"`
}

const msgRequiredFields = "Por favor, completa todos los campos obligatorios."

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("encode response")
	}
}

func respondOK(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: message})
}

func respondCreated(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// respondError translates err into the JSON error body. Server-side failures are
// logged with the request id.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	e := apperr.As(err)
	metrics.RecordError(e.Kind.Code())

	log := logging.Ctx(r.Context())
	if e.Kind == apperr.KindDatabase {
		log.Error().Err(e).Str("path", r.URL.Path).Msg(e.Message)
	} else {
		log.Debug().Str("code", e.Kind.Code()).Str("path", r.URL.Path).Msg(e.Message)
	}
	apperr.Write(w, e)
}

// pathID reads the numeric {id} route variable.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("Identificador inválido", nil)
	}
	return id, nil
}

// parseForm reads and validates the request body in one step.
func parseForm(r *http.Request, rules form.Rules) (form.Values, error) {
	v, err := form.Parse(r)
	if err != nil {
		return nil, apperr.Validation(err.Error(), nil)
	}
	if err := v.Validate(msgRequiredFields, rules); err != nil {
		return nil, err
	}
	return v, nil
}

// savePhoto stores the "foto" upload, if any, and returns its stored name.
func (h *Handler) savePhoto(r *http.Request) (*string, error) {
	f, header, err := form.File(r, "foto")
	if err != nil {
		return nil, apperr.Validation("Archivo inválido", err.Error())
	}
	if f == nil {
		return nil, nil
	}
	defer f.Close()

	name, err := h.store.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), f)
	if err != nil {
		return nil, &apperr.Error{Kind: apperr.KindDatabase, Message: "No se pudo guardar la foto", Detail: err.Error(), Err: err}
	}
	return &name, nil
}

// photoOrField prefers an uploaded file and falls back to a "foto" field
// carrying an already stored name.
func (h *Handler) photoOrField(r *http.Request, v form.Values) (*string, error) {
	foto, err := h.savePhoto(r)
	if err != nil || foto != nil {
		return foto, err
	}
	return v.OptString("foto"), nil
}

// deleteByID runs one DELETE and maps zero affected rows to 404.
func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request, model interface{}, notFound, done string) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	res := h.db.WithContext(r.Context()).Delete(model, id)
	if res.Error != nil {
		respondError(w, r, deleteError(res.Error))
		return
	}
	if res.RowsAffected == 0 {
		respondError(w, r, apperr.NotFound(notFound))
		return
	}
	respondOK(w, done)
}

func deleteError(err error) error {
	e := apperr.FromDB("Error al eliminar el registro", err)
	if e.Kind == apperr.KindValidation {
		// A foreign key still points at the row.
		return &apperr.Error{Kind: apperr.KindConflict, Message: "El registro tiene datos asociados", Err: err}
	}
	return e
}

// findError maps a missing row to a 404 carrying notFound.
func findError(notFound string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(notFound)
	}
	return apperr.Database("Error al consultar la base de datos", err)
}

// updateByID writes cols of values to the row with the given id. Zero
// matched rows becomes a 404 carrying notFound.
func (h *Handler) updateByID(r *http.Request, model, values interface{}, id int64, notFound string, cols ...string) error {
	res := h.db.WithContext(r.Context()).Model(model).Where("id = ?", id).Select(cols).Updates(values)
	if res.Error != nil {
		return apperr.FromDB("Error al actualizar el registro", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(notFound)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
