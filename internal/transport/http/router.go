// Package httptransport wires the chi router. The host middleware runs ahead
// of route matching, so by the time chi sees a tenant request its path is
// already /{slug}/... and the slug sits in the request context.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wedify/internal/hostrouter"
	"wedify/internal/platform/metrics"
	"wedify/internal/platform/middleware"
)

// NewRouter assembles the full handler chain.
func NewRouter(h *Handler, resolver *hostrouter.Resolver, logger *slog.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(hostrouter.Middleware(resolver, logger, m))
	r.Use(middleware.Logger(logger))

	// Operational endpoints: pass through host classification entirely.
	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Apex tree.
	r.Get("/", h.handleMarketing)
	r.Get("/templates", h.handleListTemplates)
	r.Get("/templates/{templateID}/preview", h.handleTemplatePreview)

	// Tenant tree, reached only via host middleware rewrites.
	r.Route("/{slug}", func(r chi.Router) {
		r.Get("/", h.handleInvitation)
		r.Get("/invite/{code}", h.handleGuestInvite)
	})

	return r
}
