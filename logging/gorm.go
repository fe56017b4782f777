package logging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const gormSlowThreshold = 500 * time.Millisecond

// GormLog sends GORM messages and SQL traces to zerolog at the level GORM
// reports them, tagged with component=gorm and the request id from ctx.
type GormLog struct {
	Level         gormlogger.LogLevel
	SlowThreshold time.Duration
}

// GormLogger maps the application log level onto GORM's.
func GormLogger(level string) gormlogger.Interface {
	lvl := gormlogger.Warn
	switch level {
	case "debug", "trace":
		lvl = gormlogger.Info
	case "error":
		lvl = gormlogger.Error
	case "disabled":
		lvl = gormlogger.Silent
	}
	return &GormLog{Level: lvl, SlowThreshold: gormSlowThreshold}
}

func (g *GormLog) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	c := *g
	c.Level = level
	return &c
}

func (g *GormLog) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.Level >= gormlogger.Info {
		g.event(ctx, zerolog.InfoLevel).Msg(fmt.Sprintf(msg, args...))
	}
}

func (g *GormLog) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.Level >= gormlogger.Warn {
		g.event(ctx, zerolog.WarnLevel).Msg(fmt.Sprintf(msg, args...))
	}
}

func (g *GormLog) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.Level >= gormlogger.Error {
		g.event(ctx, zerolog.ErrorLevel).Msg(fmt.Sprintf(msg, args...))
	}
}

// Trace logs failed statements at error, slow ones at warn and the rest at
// debug when GORM runs at its Info level. Record-not-found is not a failure.
func (g *GormLog) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.Level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && g.Level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.event(ctx, zerolog.ErrorLevel).Err(err).
			Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).
			Msg("query failed")
	case g.SlowThreshold > 0 && elapsed > g.SlowThreshold && g.Level >= gormlogger.Warn:
		sql, rows := fc()
		g.event(ctx, zerolog.WarnLevel).
			Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Dur("threshold", g.SlowThreshold).
			Msg("slow query")
	case g.Level >= gormlogger.Info:
		sql, rows := fc()
		g.event(ctx, zerolog.DebugLevel).
			Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).
			Msg("query")
	}
}

func (g *GormLog) event(ctx context.Context, level zerolog.Level) *zerolog.Event {
	if ctx == nil {
		ctx = context.Background()
	}
	return Ctx(ctx).WithLevel(level).Str("component", "gorm")
}
