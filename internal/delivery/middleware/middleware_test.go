package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"schoolhub/config"
	deliverycontext "schoolhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	logger, buf := newBufferLogger()
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)

	var seenInCtx string
	e.GET("/ping", func(c echo.Context) error {
		ctx := c.Request().Context()
		seenInCtx = deliverycontext.GetRequestIDFromContext(ctx)
		deliverycontext.GetLogger(ctx).Info("handled")

		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	require.NotEmpty(t, headerID)
	assert.Equal(t, headerID, seenInCtx)
	assert.Contains(t, buf.String(), "request_id="+headerID)
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	logger, _ := newBufferLogger()
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-id", rec.Body.String())
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		path      string
		handler   echo.HandlerFunc
		wantLog   bool
		wantLevel string
	}{
		{
			name:    "disabled when not in debug",
			debug:   false,
			path:    "/ping",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog: false,
		},
		{
			name:      "logs successful request",
			debug:     true,
			path:      "/ping",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog:   true,
			wantLevel: "level=INFO",
		},
		{
			name:      "logs resolved error status",
			debug:     true,
			path:      "/ping",
			handler:   func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound, "missing") },
			wantLog:   true,
			wantLevel: "level=WARN",
		},
		{
			name:    "skips health checks",
			debug:   true,
			path:    "/health",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			e.Use(NewLoggerMiddleware(logger, cfg).Handle)
			e.GET(tt.path, tt.handler)

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), "HTTP Request")
			assert.Contains(t, buf.String(), tt.wantLevel)
		})
	}
}
