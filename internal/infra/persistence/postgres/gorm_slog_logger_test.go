package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"khitma/config"
	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	var base, scoped bytes.Buffer
	baseLogger := slog.New(slog.NewTextHandler(&base, nil))
	scopedLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-9"))

	l := newGormSlogLogger(baseLogger, &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(), scopedLogger)

	t.Run("failed query goes to the request logger", func(t *testing.T) {
		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

		assert.Contains(t, scoped.String(), "[GORM] query failed")
		assert.Contains(t, scoped.String(), "request_id=req-9")
		assert.Empty(t, base.String())
	})

	t.Run("expected errors stay quiet", func(t *testing.T) {
		scoped.Reset()

		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrDuplicatedKey)

		assert.Empty(t, scoped.String())
	})

	t.Run("slow query warns on the base logger", func(t *testing.T) {
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, base.String(), "[GORM] slow query")
	})

	t.Run("silent mode", func(t *testing.T) {
		base.Reset()

		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, base.String())
	})

	t.Run("debug logs every query", func(t *testing.T) {
		base.Reset()
		cfg := &config.Config{}
		cfg.Env.Debug = true

		newGormSlogLogger(baseLogger, cfg).Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Contains(t, base.String(), "[GORM] query")
	})
}
