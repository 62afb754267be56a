// Package render selects a layout variant for a wedding and assembles its
// fully parameterized view model. It stops at "which variant, with which
// resolved inputs"; markup generation belongs to the presentation layer.
package render

import (
	"wedify/internal/catalog"
	"wedify/internal/theme"
	"wedify/internal/wedding/models"
)

// View is the normalized prop contract every renderer receives: the content
// payload untouched, plus a fully resolved palette.
type View struct {
	Wedding models.Wedding
	Palette theme.Palette
}

// Section is one ordered block of the rendered invitation. Accent reports
// which palette role the presentation layer should style the block with.
type Section struct {
	Kind    string   `json:"kind"`
	Heading string   `json:"heading,omitempty"`
	Lines   []string `json:"lines,omitempty"`
	Accent  string   `json:"accent,omitempty"`
}

// Invitation is the rendered output: one variant, one complete palette, and
// the ordered sections that variant chose to show.
type Invitation struct {
	TemplateID string                `json:"template_id"`
	Variant    catalog.LayoutVariant `json:"variant"`
	Palette    theme.Palette         `json:"palette"`
	Headline   string                `json:"headline"`
	Tagline    string                `json:"tagline,omitempty"`
	Sections   []Section             `json:"sections"`
	Gallery    []string              `json:"gallery,omitempty"`
}

// Renderer turns a view into an invitation for one layout variant.
type Renderer func(View) *Invitation

// Renderers returns the closed variant-to-renderer table. It is built fresh
// per call so callers can't mutate a shared map; the registry verifies at
// boot that every cataloged variant appears here.
func Renderers() map[catalog.LayoutVariant]Renderer {
	return map[catalog.LayoutVariant]Renderer{
		catalog.VariantBasic:    renderBasic,
		catalog.VariantElegant:  renderElegant,
		catalog.VariantModern:   renderModern,
		catalog.VariantRustic:   renderRustic,
		catalog.VariantTropical: renderTropical,
		catalog.VariantVintage:  renderVintage,
	}
}

// RegisteredVariants reports the variants with a renderer, in the form the
// registry's Verify expects.
func RegisteredVariants() map[catalog.LayoutVariant]bool {
	table := Renderers()
	out := make(map[catalog.LayoutVariant]bool, len(table))
	for v := range table {
		out[v] = true
	}
	return out
}
