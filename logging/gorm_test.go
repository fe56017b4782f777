package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(Config{Level: "trace", Output: &buf})
	t.Cleanup(func() { Init(Config{}) })
	return &buf
}

func TestGormLogLevels(t *testing.T) {
	sql := func() (string, int64) { return "SELECT * FROM arboles", 3 }
	fast := func() time.Time { return time.Now() }
	slow := func() time.Time { return time.Now().Add(-2 * gormSlowThreshold) }

	tests := []struct {
		name      string
		level     gormlogger.LogLevel
		call      func(ctx context.Context, g gormlogger.Interface)
		wantLevel string
		wantMsg   string
	}{
		{"info message", gormlogger.Info,
			func(ctx context.Context, g gormlogger.Interface) { g.Info(ctx, "opened %s", "pool") }, "info", "opened pool"},
		{"warn message", gormlogger.Warn,
			func(ctx context.Context, g gormlogger.Interface) { g.Warn(ctx, "retrying") }, "warn", "retrying"},
		{"error message", gormlogger.Error,
			func(ctx context.Context, g gormlogger.Interface) { g.Error(ctx, "lost %d", 1) }, "error", "lost 1"},
		{"info below warn level", gormlogger.Warn,
			func(ctx context.Context, g gormlogger.Interface) { g.Info(ctx, "hidden") }, "", ""},
		{"warn below error level", gormlogger.Error,
			func(ctx context.Context, g gormlogger.Interface) { g.Warn(ctx, "hidden") }, "", ""},
		{"failed query", gormlogger.Error,
			func(ctx context.Context, g gormlogger.Interface) { g.Trace(ctx, fast(), sql, errors.New("boom")) }, "error", "query failed"},
		{"record not found is not an error", gormlogger.Warn,
			func(ctx context.Context, g gormlogger.Interface) { g.Trace(ctx, fast(), sql, gorm.ErrRecordNotFound) }, "", ""},
		{"slow query", gormlogger.Warn,
			func(ctx context.Context, g gormlogger.Interface) { g.Trace(ctx, slow(), sql, nil) }, "warn", "slow query"},
		{"slow query hidden at error level", gormlogger.Error,
			func(ctx context.Context, g gormlogger.Interface) { g.Trace(ctx, slow(), sql, nil) }, "", ""},
		{"every query at info level", gormlogger.Info,
			func(ctx context.Context, g gormlogger.Interface) { g.Trace(ctx, fast(), sql, nil) }, "debug", "query"},
		{"fast query hidden at warn level", gormlogger.Warn,
			func(ctx context.Context, g gormlogger.Interface) { g.Trace(ctx, fast(), sql, nil) }, "", ""},
		{"silent", gormlogger.Silent,
			func(ctx context.Context, g gormlogger.Interface) { g.Trace(ctx, fast(), sql, errors.New("boom")) }, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			g := GormLogger("info").LogMode(tt.level)
			tt.call(ContextWithRequestID(context.Background(), "req-1"), g)

			if tt.wantLevel == "" {
				assert.Empty(t, buf.String())
				return
			}
			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantMsg, entry["message"])
			assert.Equal(t, "gorm", entry["component"])
			assert.Equal(t, "req-1", entry["request_id"])
		})
	}
}

func TestGormLogTraceFields(t *testing.T) {
	buf := captureLogs(t)
	g := GormLogger("error")
	g.Trace(context.Background(), time.Now(), func() (string, int64) { return "DELETE FROM ordenes", 0 }, errors.New("locked"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "DELETE FROM ordenes", entry["sql"])
	assert.Equal(t, "locked", entry["error"])
	assert.EqualValues(t, 0, entry["rows"])
	assert.NotContains(t, entry, "request_id")
}

func TestGormLogModeCopies(t *testing.T) {
	base := GormLogger("info").(*GormLog)
	quiet := base.LogMode(gormlogger.Silent).(*GormLog)

	assert.Equal(t, gormlogger.Warn, base.Level)
	assert.Equal(t, gormlogger.Silent, quiet.Level)
	assert.Equal(t, base.SlowThreshold, quiet.SlowThreshold)

	tests := []struct {
		level string
		want  gormlogger.LogLevel
	}{
		{"debug", gormlogger.Info},
		{"trace", gormlogger.Info},
		{"info", gormlogger.Warn},
		{"error", gormlogger.Error},
		{"disabled", gormlogger.Silent},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, GormLogger(tt.level).(*GormLog).Level)
		})
	}
}
