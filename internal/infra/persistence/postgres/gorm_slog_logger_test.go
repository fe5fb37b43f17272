package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"schoolhub/config"
	deliverycontext "schoolhub/internal/delivery/context"
	domainerrors "schoolhub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_LevelFromConfig(t *testing.T) {
	quiet := newGormSlogLogger(slog.Default(), &config.Config{}).(*gormSlogLogger)
	assert.Equal(t, logger.Warn, quiet.level)

	cfg := &config.Config{}
	cfg.Env.Debug = true
	verbose := newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Info, verbose.level)
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), nil)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("syntax error"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "syntax error")
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), nil)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), nil)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&base), nil)

	reqLogger := newBufferedLogger(&scoped).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "req-1")
}

func TestGormSlogLogger_SilentAndInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), nil)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, buf.String())

	l.Info(context.Background(), "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.LogMode(logger.Info).Info(context.Background(), "shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l := newGormSlogLogger(slog.Default(), nil).(*gormSlogLogger)

	sql, params := l.ParamsFilter(context.Background(), "SELECT * FROM users WHERE email = ?", "a@x.com")

	assert.Equal(t, "SELECT * FROM users WHERE email = ?", sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_FailedInsertOmitsBoundValues(t *testing.T) {
	var buf bytes.Buffer
	db := newTestDBWithLogger(t, newGormSlogLogger(newBufferedLogger(&buf), &config.Config{}))
	repo := NewUserRepository(db)
	ctx := context.Background()

	const secretHash = "$2a$10$SECRETSECRETSECRETSECRETSECRETSECRET"
	first := newTestUser("a@x.com")
	first.PasswordHash = secretHash
	first.ProfilePhoto = []byte("PHOTO-BYTES")
	require.NoError(t, repo.Create(ctx, first))

	second := newTestUser("a@x.com")
	second.PasswordHash = secretHash
	second.ProfilePhoto = []byte("PHOTO-BYTES")
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	out := buf.String()
	assert.Contains(t, out, "GORM query failed")
	assert.Contains(t, out, "INSERT INTO")
	assert.NotContains(t, out, "SECRET")
	assert.NotContains(t, out, "PHOTO-BYTES")
	assert.NotContains(t, out, "a@x.com")
}
