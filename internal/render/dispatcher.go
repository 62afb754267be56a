package render

import (
	"errors"
	"log/slog"

	"wedify/internal/catalog"
	"wedify/internal/platform/metrics"
	"wedify/internal/theme"
	"wedify/internal/wedding/models"
	"wedify/pkg/platform/sentinel"
)

// Dispatcher maps a wedding's chosen template onto exactly one layout variant
// and hands that variant its resolved inputs. Pure selection plus parameter
// assembly; no I/O.
type Dispatcher struct {
	registry  *catalog.Registry
	renderers map[catalog.LayoutVariant]Renderer
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(d *Dispatcher)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// NewDispatcher constructs a Dispatcher over the given registry. The caller
// is expected to have run registry.Verify(RegisteredVariants()) at boot, so
// render-time fallbacks are data-quality events, not configuration bugs.
func NewDispatcher(registry *catalog.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{registry: registry, renderers: Renderers()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Render produces the invitation for a wedding. An unknown template id or an
// unmapped layout variant silently falls back to the catalog's designated
// default; neither is ever surfaced to the request path as an error.
func (d *Dispatcher) Render(w models.Wedding) *Invitation {
	tpl, err := d.registry.Find(w.TemplateID)
	if errors.Is(err, sentinel.ErrNotFound) {
		tpl = d.registry.Fallback()
		d.logWarn("unknown template id, using fallback",
			"template_id", w.TemplateID,
			"fallback_id", tpl.ID,
			"slug", w.Slug,
		)
		d.metrics.IncrementTemplateFallback()
	}

	renderer, ok := d.renderers[tpl.LayoutVariant]
	if !ok {
		fallback := d.registry.Fallback()
		d.logWarn("unmapped layout variant, using fallback",
			"variant", string(tpl.LayoutVariant),
			"fallback_variant", string(fallback.LayoutVariant),
		)
		renderer = d.renderers[fallback.LayoutVariant]
		tpl = fallback
		d.metrics.IncrementTemplateFallback()
	}

	inv := renderer(View{
		Wedding: w,
		Palette: theme.Resolve(tpl.DefaultPalette, w.CustomColors),
	})
	inv.TemplateID = tpl.ID
	d.metrics.IncrementRender(string(inv.Variant))
	return inv
}

func (d *Dispatcher) logWarn(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Warn(msg, args...)
	}
}
