package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rutcheck/internal/platform/metrics"
	"rutcheck/internal/validation"
	validationHandler "rutcheck/internal/validation/handler"
	validationMetrics "rutcheck/internal/validation/metrics"
	"rutcheck/pkg/platform/middleware/request"
	"rutcheck/pkg/rut"
)

type panicModule struct{}

func (panicModule) Register(r chi.Router) {
	r.Get("/panic", func(http.ResponseWriter, *http.Request) { panic("boom") })
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := validation.New(rut.DefaultPolicy(), logger, validationMetrics.New(reg))
	require.NoError(t, err)

	return NewRouter(Deps{
		Metrics:  metrics.New(reg),
		Gatherer: reg,
		Modules:  []Registrar{validationHandler.New(svc, logger), panicModule{}},
	})
}

func TestRouter_Health(t *testing.T) {
	router := newTestServer(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(request.HeaderRequestID))
}

func TestRouter_ValidateAndMetrics(t *testing.T) {
	router := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rut/validate", strings.NewReader(`{"rut":"12.345.678-5"}`))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rut":"12.345.678-5","valid":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `rutcheck_operations_total{operation="validate",result="valid"} 1`)
	assert.Contains(t, body, `rutcheck_http_requests_total{method="POST",route="/rut/validate",status="200"} 1`)
}

func TestRouter_RecoversPanics(t *testing.T) {
	router := newTestServer(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `rutcheck_http_requests_total{method="GET",route="/panic",status="500"} 1`)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestServer(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not_found","error_description":"route not found"}`, rec.Body.String())
}
