// Package models defines the wedding content payload. This is externally
// owned data: the rendering core consumes it as-is and never validates or
// persists it on its own.
package models

import (
	"wedify/internal/theme"
)

// Wedding is one couple's invitation content, keyed by their tenant slug.
// Date and Time stay as display strings; formatting them is the owning
// dashboard's concern, not ours.
type Wedding struct {
	Slug         string `json:"slug"`
	BrideName    string `json:"bride_name"`
	GroomName    string `json:"groom_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Venue        string `json:"venue"`
	VenueAddress string `json:"venue_address,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	Message      string `json:"message,omitempty"`

	// Optional narrative fields.
	Story    string `json:"story,omitempty"`
	HowWeMet string `json:"how_we_met,omitempty"`
	BrideBio string `json:"bride_bio,omitempty"`
	GroomBio string `json:"groom_bio,omitempty"`

	// Gallery holds ordered image references.
	Gallery []string `json:"gallery,omitempty"`

	// TemplateID references the catalog; it may dangle (deleted template)
	// and the dispatcher falls back rather than failing.
	TemplateID string `json:"template_id"`

	// CustomColors is the couple's partial palette override, if any.
	CustomColors *theme.Override `json:"custom_colors,omitempty"`
}
