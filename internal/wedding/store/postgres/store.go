// Package postgres implements the wedding store against PostgreSQL. This is
// the production shape of the "external tenant/content data source": the
// dashboard application writes these rows, the edge service only reads them.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"wedify/internal/theme"
	"wedify/internal/wedding/models"
	"wedify/pkg/platform/sentinel"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Schema for the weddings table. Kept here so integration tests and fresh
// deployments share one definition.
const Schema = `
CREATE TABLE IF NOT EXISTS weddings (
	slug            TEXT PRIMARY KEY,
	bride_name      TEXT NOT NULL,
	groom_name      TEXT NOT NULL,
	wedding_date    TEXT NOT NULL,
	wedding_time    TEXT NOT NULL,
	venue           TEXT NOT NULL,
	venue_address   TEXT NOT NULL DEFAULT '',
	image_url       TEXT NOT NULL DEFAULT '',
	message         TEXT NOT NULL DEFAULT '',
	story           TEXT NOT NULL DEFAULT '',
	how_we_met      TEXT NOT NULL DEFAULT '',
	bride_bio       TEXT NOT NULL DEFAULT '',
	groom_bio       TEXT NOT NULL DEFAULT '',
	gallery         TEXT[] NOT NULL DEFAULT '{}',
	template_id     TEXT NOT NULL,
	color_primary   TEXT NOT NULL DEFAULT '',
	color_secondary TEXT NOT NULL DEFAULT '',
	color_accent    TEXT NOT NULL DEFAULT ''
)`

// EnsureSchema creates the weddings table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure weddings schema: %w", err)
	}
	return nil
}

func (s *Store) FindBySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	const query = `
		SELECT slug, bride_name, groom_name, wedding_date, wedding_time,
		       venue, venue_address, image_url, message,
		       story, how_we_met, bride_bio, groom_bio,
		       gallery, template_id,
		       color_primary, color_secondary, color_accent
		FROM weddings
		WHERE slug = $1`

	var (
		w        models.Wedding
		gallery  pq.StringArray
		override theme.Override
	)
	err := s.db.QueryRowContext(ctx, query, slug).Scan(
		&w.Slug, &w.BrideName, &w.GroomName, &w.Date, &w.Time,
		&w.Venue, &w.VenueAddress, &w.ImageURL, &w.Message,
		&w.Story, &w.HowWeMet, &w.BrideBio, &w.GroomBio,
		&gallery, &w.TemplateID,
		&override.Primary, &override.Secondary, &override.Accent,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("wedding %q: %w", slug, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find wedding %q: %w", slug, err)
	}

	w.Gallery = []string(gallery)
	if !override.IsZero() {
		w.CustomColors = &override
	}
	return &w, nil
}

// Put upserts a wedding row. The edge service itself only reads; Put exists
// for seeding and integration tests.
func (s *Store) Put(ctx context.Context, w models.Wedding) error {
	const query = `
		INSERT INTO weddings (
			slug, bride_name, groom_name, wedding_date, wedding_time,
			venue, venue_address, image_url, message,
			story, how_we_met, bride_bio, groom_bio,
			gallery, template_id,
			color_primary, color_secondary, color_accent
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		ON CONFLICT (slug) DO UPDATE SET
			bride_name = EXCLUDED.bride_name,
			groom_name = EXCLUDED.groom_name,
			wedding_date = EXCLUDED.wedding_date,
			wedding_time = EXCLUDED.wedding_time,
			venue = EXCLUDED.venue,
			venue_address = EXCLUDED.venue_address,
			image_url = EXCLUDED.image_url,
			message = EXCLUDED.message,
			story = EXCLUDED.story,
			how_we_met = EXCLUDED.how_we_met,
			bride_bio = EXCLUDED.bride_bio,
			groom_bio = EXCLUDED.groom_bio,
			gallery = EXCLUDED.gallery,
			template_id = EXCLUDED.template_id,
			color_primary = EXCLUDED.color_primary,
			color_secondary = EXCLUDED.color_secondary,
			color_accent = EXCLUDED.color_accent`

	var override theme.Override
	if w.CustomColors != nil {
		override = *w.CustomColors
	}
	gallery := w.Gallery
	if gallery == nil {
		gallery = []string{}
	}
	_, err := s.db.ExecContext(ctx, query,
		w.Slug, w.BrideName, w.GroomName, w.Date, w.Time,
		w.Venue, w.VenueAddress, w.ImageURL, w.Message,
		w.Story, w.HowWeMet, w.BrideBio, w.GroomBio,
		pq.Array(gallery), w.TemplateID,
		override.Primary, override.Secondary, override.Accent,
	)
	if err != nil {
		return fmt.Errorf("put wedding %q: %w", w.Slug, err)
	}
	return nil
}
