//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"wedify/internal/theme"
	"wedify/internal/wedding/models"
	"wedify/pkg/platform/sentinel"
	"wedify/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	pg := containers.NewPostgresContainer(s.T())
	s.store = New(pg.DB)
	s.Require().NoError(s.store.EnsureSchema(s.ctx))
}

func (s *PostgresStoreSuite) SetupTest() {
	_, err := s.store.db.ExecContext(s.ctx, "TRUNCATE weddings")
	s.Require().NoError(err)
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) TestPutAndFindRoundTrip() {
	w := models.Wedding{
		Slug:         "janith-and-sanduni",
		BrideName:    "Sanduni Perera",
		GroomName:    "Janith Fernando",
		Date:         "2026-12-15",
		Time:         "6:00 PM",
		Venue:        "Grand Ballroom, Hotel Paradise",
		VenueAddress: "123 Paradise Street, Colombo 07, Sri Lanka",
		Message:      "We joyfully request the pleasure of your company",
		Story:        "It began with a borrowed umbrella.",
		Gallery:      []string{"/img/1.jpg", "/img/2.jpg"},
		TemplateID:   "elegant-rose",
	}
	s.Require().NoError(s.store.Put(s.ctx, w))

	got, err := s.store.FindBySlug(s.ctx, "janith-and-sanduni")
	s.Require().NoError(err)
	s.Equal(w, *got)
}

func (s *PostgresStoreSuite) TestFindMissingSlug() {
	_, err := s.store.FindBySlug(s.ctx, "nobody-here")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestPutUpserts() {
	w := models.Wedding{
		Slug: "jane-and-john", BrideName: "Jane", GroomName: "John",
		Date: "2026-08-21", Time: "4:30 PM", Venue: "Seaside Pavilion",
		TemplateID: "basic",
	}
	s.Require().NoError(s.store.Put(s.ctx, w))

	w.TemplateID = "tropical-paradise"
	w.Venue = "Beach Pavilion"
	s.Require().NoError(s.store.Put(s.ctx, w))

	got, err := s.store.FindBySlug(s.ctx, "jane-and-john")
	s.Require().NoError(err)
	s.Equal("tropical-paradise", got.TemplateID)
	s.Equal("Beach Pavilion", got.Venue)
}

func (s *PostgresStoreSuite) TestColorOverridesSurviveStorage() {
	w := models.Wedding{
		Slug: "with-colors", BrideName: "A", GroomName: "B",
		Date: "2026-01-01", Time: "noon", Venue: "Hall",
		TemplateID:   "elegant-rose",
		CustomColors: &theme.Override{Primary: "#e91e63"},
	}
	s.Require().NoError(s.store.Put(s.ctx, w))

	got, err := s.store.FindBySlug(s.ctx, "with-colors")
	s.Require().NoError(err)
	s.Require().NotNil(got.CustomColors)
	s.Equal("#e91e63", got.CustomColors.Primary)
	s.Empty(got.CustomColors.Secondary)
}

func (s *PostgresStoreSuite) TestNoOverridesYieldsNilCustomColors() {
	w := models.Wedding{
		Slug: "no-colors", BrideName: "A", GroomName: "B",
		Date: "2026-01-01", Time: "noon", Venue: "Hall",
		TemplateID: "basic",
	}
	s.Require().NoError(s.store.Put(s.ctx, w))

	got, err := s.store.FindBySlug(s.ctx, "no-colors")
	s.Require().NoError(err)
	s.Nil(got.CustomColors)
}

func (s *PostgresStoreSuite) TestEmptyGalleryRoundTrips() {
	w := models.Wedding{
		Slug: "no-gallery", BrideName: "A", GroomName: "B",
		Date: "2026-01-01", Time: "noon", Venue: "Hall",
		TemplateID: "basic",
	}
	s.Require().NoError(s.store.Put(s.ctx, w))

	got, err := s.store.FindBySlug(s.ctx, "no-gallery")
	s.Require().NoError(err)
	s.Empty(got.Gallery)
}
