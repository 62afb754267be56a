package render

import (
	"wedify/internal/catalog"
	"wedify/internal/wedding/models"
)

// The six renderers below mirror the interchangeable invitation styles. They
// share the View contract and differ only in wording, section order, and
// which palette role each block leans on.

func renderBasic(v View) *Invitation {
	inv := &Invitation{
		Variant:  catalog.VariantBasic,
		Palette:  v.Palette,
		Headline: coupleNames(v.Wedding),
	}
	inv.Sections = append(inv.Sections, messageSection(v.Wedding, "secondary")...)
	inv.Sections = append(inv.Sections,
		detail("date", "Date", v.Wedding.Date, "primary"),
		detail("time", "Time", v.Wedding.Time, "primary"),
		venueSection(v.Wedding, "Venue", "primary"),
	)
	inv.Sections = append(inv.Sections, narrativeSections(v.Wedding, "secondary")...)
	inv.Gallery = v.Wedding.Gallery
	return inv
}

func renderElegant(v View) *Invitation {
	inv := &Invitation{
		Variant:  catalog.VariantElegant,
		Palette:  v.Palette,
		Headline: coupleNames(v.Wedding),
		Tagline:  "Together with their families",
	}
	inv.Sections = append(inv.Sections, messageSection(v.Wedding, "primary")...)
	inv.Sections = append(inv.Sections,
		detail("date", "Date", v.Wedding.Date, "primary"),
		detail("time", "Time", v.Wedding.Time, "primary"),
		venueSection(v.Wedding, "Venue", "primary"),
	)
	inv.Sections = append(inv.Sections, narrativeSections(v.Wedding, "secondary")...)
	inv.Gallery = v.Wedding.Gallery
	return inv
}

func renderModern(v View) *Invitation {
	// Modern shows first names only in a split hero, details on the side.
	inv := &Invitation{
		Variant:  catalog.VariantModern,
		Palette:  v.Palette,
		Headline: firstName(v.Wedding.BrideName) + " & " + firstName(v.Wedding.GroomName),
	}
	inv.Sections = append(inv.Sections,
		detail("date", "Wedding Date", v.Wedding.Date, "primary"),
		detail("time", "Ceremony Time", v.Wedding.Time, "primary"),
		venueSection(v.Wedding, "Location", "primary"),
	)
	inv.Sections = append(inv.Sections, messageSection(v.Wedding, "secondary")...)
	inv.Sections = append(inv.Sections, narrativeSections(v.Wedding, "secondary")...)
	inv.Gallery = v.Wedding.Gallery
	return inv
}

func renderRustic(v View) *Invitation {
	inv := &Invitation{
		Variant:  catalog.VariantRustic,
		Palette:  v.Palette,
		Headline: coupleNames(v.Wedding),
		Tagline:  "Are tying the knot",
	}
	inv.Sections = append(inv.Sections, narrativeSections(v.Wedding, "secondary")...)
	inv.Sections = append(inv.Sections,
		detail("date", "Date", v.Wedding.Date, "secondary"),
		detail("time", "Time", v.Wedding.Time, "secondary"),
		venueSection(v.Wedding, "Venue", "secondary"),
	)
	inv.Sections = append(inv.Sections, messageSection(v.Wedding, "primary")...)
	inv.Gallery = v.Wedding.Gallery
	return inv
}

func renderTropical(v View) *Invitation {
	inv := &Invitation{
		Variant:  catalog.VariantTropical,
		Palette:  v.Palette,
		Headline: coupleNames(v.Wedding),
		Tagline:  "Beach Wedding Celebration",
	}
	inv.Sections = append(inv.Sections, messageSection(v.Wedding, "primary")...)
	inv.Sections = append(inv.Sections,
		detail("date", "When", v.Wedding.Date, "accent"),
		detail("time", "Time", v.Wedding.Time, "accent"),
		venueSection(v.Wedding, "Where", "accent"),
	)
	inv.Sections = append(inv.Sections, narrativeSections(v.Wedding, "secondary")...)
	inv.Gallery = v.Wedding.Gallery
	return inv
}

func renderVintage(v View) *Invitation {
	inv := &Invitation{
		Variant:  catalog.VariantVintage,
		Palette:  v.Palette,
		Headline: coupleNames(v.Wedding),
		Tagline:  "Together With Their Families",
	}
	inv.Sections = append(inv.Sections,
		detail("date", "Date", v.Wedding.Date, "secondary"),
		detail("time", "Time", v.Wedding.Time, "secondary"),
		venueSection(v.Wedding, "Venue", "secondary"),
	)
	inv.Sections = append(inv.Sections, messageSection(v.Wedding, "primary")...)
	inv.Sections = append(inv.Sections, narrativeSections(v.Wedding, "secondary")...)
	inv.Gallery = v.Wedding.Gallery
	return inv
}

func coupleNames(w models.Wedding) string {
	return w.BrideName + " & " + w.GroomName
}

func firstName(full string) string {
	for i := 0; i < len(full); i++ {
		if full[i] == ' ' {
			return full[:i]
		}
	}
	return full
}

func detail(kind, heading, value, accent string) Section {
	return Section{Kind: kind, Heading: heading, Lines: []string{value}, Accent: accent}
}

func venueSection(w models.Wedding, heading, accent string) Section {
	lines := []string{w.Venue}
	if w.VenueAddress != "" {
		lines = append(lines, w.VenueAddress)
	}
	return Section{Kind: "venue", Heading: heading, Lines: lines, Accent: accent}
}

func messageSection(w models.Wedding, accent string) []Section {
	if w.Message == "" {
		return nil
	}
	return []Section{{Kind: "message", Lines: []string{w.Message}, Accent: accent}}
}

// narrativeSections emits the optional story blocks in a fixed order; absent
// fields produce no section.
func narrativeSections(w models.Wedding, accent string) []Section {
	var out []Section
	if w.Story != "" {
		out = append(out, Section{Kind: "story", Heading: "Our Story", Lines: []string{w.Story}, Accent: accent})
	}
	if w.HowWeMet != "" {
		out = append(out, Section{Kind: "how_we_met", Heading: "How We Met", Lines: []string{w.HowWeMet}, Accent: accent})
	}
	if w.BrideBio != "" || w.GroomBio != "" {
		var lines []string
		if w.BrideBio != "" {
			lines = append(lines, w.BrideBio)
		}
		if w.GroomBio != "" {
			lines = append(lines, w.GroomBio)
		}
		out = append(out, Section{Kind: "bios", Heading: "The Couple", Lines: lines, Accent: accent})
	}
	return out
}
