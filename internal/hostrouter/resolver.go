// Package hostrouter classifies every inbound hostname as apex or tenant
// traffic and rewrites tenant requests onto slug-scoped routes. It is the
// only place in the service that parses the Host header; downstream handlers
// read the resolved slug from the request context.
package hostrouter

import (
	"net/http"
	"strings"
)

// Kind classifies a routing decision.
type Kind string

const (
	// KindApex leaves the request on the marketing/application tree.
	KindApex Kind = "apex"
	// KindTenant rewrites the request onto a tenant-scoped route.
	KindTenant Kind = "tenant"
	// KindRedirect sends the client elsewhere (www canonicalization or
	// invalid/reserved tenant labels degrading to the apex).
	KindRedirect Kind = "redirect"
	// KindPassthrough skips classification entirely (assets, metrics,
	// API and health endpoints).
	KindPassthrough Kind = "passthrough"
)

// Decision is the per-request routing outcome. Created and discarded within
// a single request; never shared.
type Decision struct {
	Kind           Kind
	Slug           string
	RewrittenPath  string
	RedirectURL    string
	RedirectStatus int
}

// Resolver holds the static configuration a routing decision depends on.
// Resolve is a pure function of (hostname, path) plus this configuration, so
// a Resolver is safe for unbounded concurrent use.
type Resolver struct {
	domain   string
	devHost  string
	reserved map[string]struct{}
}

// NewResolver builds a Resolver for the given apex domain, local-development
// alias, and reserved-label list. Inputs are lowercased defensively; the
// grammar only ever matches lowercase.
func NewResolver(domain, devHost string, reserved []string) *Resolver {
	set := make(map[string]struct{}, len(reserved))
	for _, label := range reserved {
		set[strings.ToLower(label)] = struct{}{}
	}
	return &Resolver{
		domain:   strings.ToLower(domain),
		devHost:  strings.ToLower(devHost),
		reserved: set,
	}
}

// IsReserved reports whether label is in the reserved-word set.
func (r *Resolver) IsReserved(label string) bool {
	_, ok := r.reserved[strings.ToLower(label)]
	return ok
}

// Resolve classifies one (hostname, path) pair. Malformed hostnames and
// reserved labels are not errors: they degrade to a temporary redirect to
// the apex so a bad Host header can never 500 or leak another tenant's page.
// Tenant existence is checked later by the page handler, not here.
func (r *Resolver) Resolve(hostname, path string) Decision {
	if isPassthroughPath(path) {
		return Decision{Kind: KindPassthrough}
	}

	host := strings.ToLower(stripPort(hostname))

	// Apex and its aliases.
	if host == r.domain || host == r.devHost {
		return Decision{Kind: KindApex}
	}
	if host == "www."+r.domain {
		// Canonicalize permanently so bookmarks settle on the bare apex.
		return Decision{
			Kind:           KindRedirect,
			RedirectURL:    "https://" + r.domain + path,
			RedirectStatus: http.StatusMovedPermanently,
		}
	}

	// Tenant candidate: leading label of {slug}.{domain}.
	if label, ok := strings.CutSuffix(host, "."+r.domain); ok {
		if ValidSlug(label) && !r.IsReserved(label) {
			return Decision{
				Kind:          KindTenant,
				Slug:          label,
				RewrittenPath: "/" + label + path,
			}
		}
	}

	// Unknown hosts, nested labels, grammar violations, reserved words:
	// degrade to the marketing site.
	return Decision{
		Kind:           KindRedirect,
		RedirectURL:    "https://" + r.domain + path,
		RedirectStatus: http.StatusTemporaryRedirect,
	}
}

// isPassthroughPath excludes non-page traffic from host classification.
func isPassthroughPath(path string) bool {
	switch {
	case strings.HasPrefix(path, "/api/"),
		strings.HasPrefix(path, "/static/"),
		strings.HasPrefix(path, "/metrics"),
		strings.HasPrefix(path, "/healthz"):
		return true
	}
	// Asset requests (favicon.ico, *.png, ...) carry a dot in the last
	// segment; page routes never do.
	if i := strings.LastIndexByte(path, '/'); i >= 0 && strings.Contains(path[i+1:], ".") {
		return true
	}
	return false
}

// stripPort removes a trailing :port from a Host header value, tolerating
// bracketed IPv6 literals.
func stripPort(host string) string {
	if strings.HasPrefix(host, "[") {
		if i := strings.LastIndex(host, "]"); i >= 0 {
			return host[:i+1]
		}
		return host
	}
	if i := strings.IndexByte(host, ':'); i >= 0 {
		return host[:i]
	}
	return host
}
