// Package catalog holds the template registry: the fixed, process-wide set of
// selectable invitation styles. The catalog is loaded once at boot from a
// versioned YAML artifact and never mutated afterwards; changing the available
// templates is a deployment, not a database write.
package catalog

import (
	"wedify/internal/theme"
)

// LayoutVariant selects which rendering implementation a template uses.
// The set is closed: every variant has exactly one renderer registered in
// internal/render, and the registry asserts that mapping at boot.
type LayoutVariant string

const (
	VariantBasic    LayoutVariant = "basic"
	VariantElegant  LayoutVariant = "elegant"
	VariantModern   LayoutVariant = "modern"
	VariantRustic   LayoutVariant = "rustic"
	VariantTropical LayoutVariant = "tropical"
	VariantVintage  LayoutVariant = "vintage"
)

// Template describes one selectable visual style. Immutable after boot.
type Template struct {
	ID             string        `json:"id" yaml:"id"`
	Name           string        `json:"name" yaml:"name"`
	Description    string        `json:"description" yaml:"description"`
	Thumbnail      string        `json:"thumbnail" yaml:"thumbnail"`
	DefaultPalette theme.Palette `json:"colors" yaml:"colors"`
	LayoutVariant  LayoutVariant `json:"layout" yaml:"layout"`
}
