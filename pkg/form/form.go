// Package form reads request bodies that may arrive as JSON, a multipart
// form or a URL-encoded form into one flat field map.
package form

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// MaxMemory bounds the multipart parts kept in memory; larger files spill to disk.
const MaxMemory = 32 << 20

// Values holds the submitted fields as strings. Absent and null fields are
// not present in the map.
type Values map[string]string

// Parse reads the body of r according to its Content-Type.
func Parse(r *http.Request) (Values, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(MaxMemory); err != nil {
			return nil, fmt.Errorf("bad multipart form: %w", err)
		}
		return fromMultiValues(r.MultipartForm.Value), nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("bad form: %w", err)
		}
		return fromMultiValues(r.PostForm), nil
	default:
		return parseJSON(r.Body)
	}
}

func parseJSON(body io.Reader) (Values, error) {
	if body == nil {
		return Values{}, nil
	}
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Values{}, nil
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	out := make(Values, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
		case string:
			out[k] = val
		case json.Number:
			out[k] = val.String()
		case bool:
			out[k] = strconv.FormatBool(val)
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("field %q must be a scalar", k)
		}
	}
	return out, nil
}

func fromMultiValues(m map[string][]string) Values {
	out := make(Values, len(m))
	for k, vs := range m {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// File returns the uploaded file for field, or nil when the request has none.
func File(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}
	f, h, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return f, h, nil
}

// Has reports whether key was submitted with a non-blank value.
func (v Values) Has(key string) bool {
	return strings.TrimSpace(v[key]) != ""
}

// Int64 parses key; the caller is expected to have validated it.
func (v Values) Int64(key string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(v[key]), 10, 64)
	return n
}

// OptInt64 is Int64 for optional fields: nil when blank or unparsable.
func (v Values) OptInt64(key string) *int64 {
	if !v.Has(key) {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v[key]), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func (v Values) OptFloat64(key string) *float64 {
	if !v.Has(key) {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v[key]), 64)
	if err != nil {
		return nil
	}
	return &f
}

func (v Values) OptString(key string) *string {
	if !v.Has(key) {
		return nil
	}
	s := v[key]
	return &s
}
