package hostrouter

import (
	"log/slog"
	"net/http"

	"wedify/internal/platform/metrics"
	"wedify/pkg/requestcontext"
)

// Middleware applies the resolver to every request before route matching.
// Tenant hits are rewritten in place (the router then matches the
// slug-scoped tree) with the slug attached to the request context; redirects
// short-circuit the chain. Must be installed ahead of any route handling.
func Middleware(resolver *Resolver, logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := resolver.Resolve(r.Host, r.URL.Path)
			m.IncrementRoutingDecision(string(decision.Kind))

			switch decision.Kind {
			case KindRedirect:
				location := decision.RedirectURL
				if r.URL.RawQuery != "" {
					location += "?" + r.URL.RawQuery
				}
				logger.DebugContext(r.Context(), "host redirect",
					"host", r.Host,
					"location", location,
					"status", decision.RedirectStatus,
				)
				http.Redirect(w, r, location, decision.RedirectStatus)
				return

			case KindTenant:
				ctx := requestcontext.WithTenantSlug(r.Context(), decision.Slug)
				r = r.WithContext(ctx)
				r.URL.Path = decision.RewrittenPath
				r.URL.RawPath = ""
				next.ServeHTTP(w, r)
				return

			default: // apex, passthrough
				next.ServeHTTP(w, r)
			}
		})
	}
}
