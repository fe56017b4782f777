package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestKindStatusAndCode(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
		code   string
	}{
		{KindValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{KindAuthorization, http.StatusUnauthorized, "UNAUTHORIZED"},
		{KindForbidden, http.StatusForbidden, "FORBIDDEN"},
		{KindNotFound, http.StatusNotFound, "NOT_FOUND"},
		{KindConflict, http.StatusConflict, "CONFLICT"},
		{KindDatabase, http.StatusInternalServerError, "DATABASE_ERROR"},
		{KindRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.kind.Status())
			assert.Equal(t, tt.code, tt.kind.Code())
		})
	}
}

func TestFromDB(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"record not found", gorm.ErrRecordNotFound, KindNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", gorm.ErrRecordNotFound), KindNotFound},
		{"duplicate key", gorm.ErrDuplicatedKey, KindConflict},
		{"foreign key", gorm.ErrForeignKeyViolated, KindValidation},
		{"driver failure", errors.New("connection reset"), KindDatabase},
		{"already classified", Conflict("arme taken"), KindConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := FromDB("query failed", tt.err)
			assert.Equal(t, tt.kind, e.Kind)
			assert.ErrorIs(t, e, tt.err)
		})
	}
}

func TestDatabaseForwardsDetail(t *testing.T) {
	e := Database("insert failed", errors.New("column foo does not exist"))
	assert.Equal(t, "column foo does not exist", e.Detail)
	assert.Equal(t, "insert failed: column foo does not exist", e.Error())
}

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, Validation("campos obligatorios", []string{"arme"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Equal(t, "campos obligatorios", body.Message)
	assert.Equal(t, []interface{}{"arme"}, body.Detail)
}

func TestWriteUnknownError(t *testing.T) {
	rec := httptest.NewRecorder()
	e := Write(rec, errors.New("boom"))
	assert.Equal(t, KindDatabase, e.Kind)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
