package apperr

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Body is the JSON shape of every error response.
type Body struct {
	Success bool        `json:"success"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

// Write sends err as a JSON error response and returns the classified error.
func Write(w http.ResponseWriter, err error) *Error {
	e := As(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Kind.Status())
	json.NewEncoder(w).Encode(Body{
		Success: false,
		Code:    e.Kind.Code(),
		Message: e.Message,
		Detail:  e.Detail,
	})
	return e
}
