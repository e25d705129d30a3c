package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rutcheck/internal/platform/metrics"
	dErrors "rutcheck/pkg/domain-errors"
	"rutcheck/pkg/platform/httputil"
	"rutcheck/pkg/platform/middleware/request"
	"rutcheck/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by module handlers that mount their own routes.
type Registrar interface {
	Register(r chi.Router)
}

// Deps carries everything the router needs.
type Deps struct {
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Modules  []Registrar
}

// NewRouter wires middleware, operational endpoints and module routes. The
// router itself holds no business logic.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.ClientMetadata)
	r.Use(requesttime.Middleware)
	// Metrics wrap the recoverer so panicking requests are counted as 500s.
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	for _, m := range deps.Modules {
		m.Register(r)
	}
	return r
}
