package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wedify/internal/catalog"
	"wedify/internal/platform/middleware"
	"wedify/internal/render"
	"wedify/internal/theme"
	"wedify/internal/wedding/models"
	weddingservice "wedify/internal/wedding/service"
	dErrors "wedify/pkg/domain-errors"
	"wedify/pkg/platform/httputil"
	"wedify/pkg/requestcontext"
)

// Handler is the thin HTTP layer over the wedding service and catalog.
type Handler struct {
	weddings   *weddingservice.Service
	registry   *catalog.Registry
	dispatcher *render.Dispatcher
	logger     *slog.Logger
}

func NewHandler(weddings *weddingservice.Service, registry *catalog.Registry, dispatcher *render.Dispatcher, logger *slog.Logger) *Handler {
	return &Handler{weddings: weddings, registry: registry, dispatcher: dispatcher, logger: logger}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleMarketing(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"name":        "Wedify",
		"description": "Create beautiful wedding invitations and manage your guest list effortlessly",
	})
}

func (h *Handler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"templates": h.registry.List(),
	})
}

// handleTemplatePreview renders a sample invitation in the requested
// template, honoring optional ?primary/?secondary/?accent overrides so the
// dashboard's color customizer can preview live.
func (h *Handler) handleTemplatePreview(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")
	if _, err := h.registry.Find(templateID); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown template"))
		return
	}

	sample := sampleWedding
	sample.TemplateID = templateID
	q := r.URL.Query()
	if override := (theme.Override{
		Primary:   q.Get("primary"),
		Secondary: q.Get("secondary"),
		Accent:    q.Get("accent"),
	}); !override.IsZero() {
		sample.CustomColors = &override
	}

	httputil.WriteJSON(w, http.StatusOK, h.dispatcher.Render(sample))
}

func (h *Handler) handleInvitation(w http.ResponseWriter, r *http.Request) {
	h.writeInvitation(w, r, nil)
}

// handleGuestInvite serves a per-guest deep link. The code is opaque to this
// service; it is echoed back for the RSVP flow upstream.
func (h *Handler) handleGuestInvite(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	h.writeInvitation(w, r, map[string]string{"invite_code": code})
}

func (h *Handler) writeInvitation(w http.ResponseWriter, r *http.Request, extra map[string]string) {
	ctx := r.Context()

	// The host middleware resolved the slug; direct apex access to the
	// tenant tree falls back to the path parameter.
	slug := requestcontext.TenantSlug(ctx)
	if slug == "" {
		slug = chi.URLParam(r, "slug")
	}

	inv, err := h.weddings.GetInvitation(ctx, slug)
	if err != nil {
		if !dErrors.Is(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to render invitation",
				"request_id", middleware.GetRequestID(ctx),
				"slug", slug,
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}

	body := map[string]any{
		"slug":       slug,
		"invitation": inv,
	}
	for k, v := range extra {
		body[k] = v
	}
	httputil.WriteJSON(w, http.StatusOK, body)
}

// sampleWedding backs the template preview endpoint.
var sampleWedding = models.Wedding{
	Slug:      "preview",
	BrideName: "Jane Smith",
	GroomName: "John Doe",
	Date:      "2026-12-15",
	Time:      "6:00 PM",
	Venue:     "Grand Ballroom, Hotel Paradise",
	Message:   "We joyfully request the pleasure of your company at our wedding celebration",
	Gallery: []string{
		"https://images.unsplash.com/photo-1519741497674-611481863552?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=800&h=600&fit=crop",
	},
}
