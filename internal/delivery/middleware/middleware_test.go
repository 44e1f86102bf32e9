package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arches/config"
	deliverycontext "arches/internal/delivery/context"
	"arches/internal/infra/metrics"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	var seen, fromCtx string
	e.GET("/", mw.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestID(c)
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, fromCtx)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
	e.GET("/", mw.Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.NotEqual(t, strings.Repeat("x", maxRequestIDLength+1), rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	e.GET("/ok", mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) }))
	e.GET("/fail", mw.Handle(func(echo.Context) error { return echo.NewHTTPError(http.StatusBadRequest, "bad") }))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Zero(t, buf.Len())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.InDelta(t, http.StatusBadRequest, entry["status"], 0)
	assert.Equal(t, "/fail", entry["uri"])
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	m := metrics.New()
	mw := NewMetricsMiddleware(m)

	e := echo.New()
	e.Use(mw.Handle)
	e.GET("/api/v1/visits/:locationId", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/visits/42", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `arches_http_requests_total{method="GET",path="/api/v1/visits/:locationId",status="200"} 1`)
}
