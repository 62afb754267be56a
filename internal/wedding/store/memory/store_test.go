package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"wedify/internal/wedding/models"
	"wedify/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = New()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) TestPutAndFind() {
	w := models.Wedding{
		Slug:       "janith-and-sanduni",
		BrideName:  "Sanduni Perera",
		GroomName:  "Janith Fernando",
		TemplateID: "elegant-rose",
	}
	s.Require().NoError(s.store.Put(s.ctx, w))

	got, err := s.store.FindBySlug(s.ctx, "janith-and-sanduni")
	s.Require().NoError(err)
	s.Equal(w, *got)
}

func (s *MemoryStoreSuite) TestFindMissingSlug() {
	_, err := s.store.FindBySlug(s.ctx, "nobody-here")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestPutOverwritesExisting() {
	w := models.Wedding{Slug: "jane-and-john", TemplateID: "basic"}
	s.Require().NoError(s.store.Put(s.ctx, w))

	w.TemplateID = "tropical-paradise"
	s.Require().NoError(s.store.Put(s.ctx, w))

	got, err := s.store.FindBySlug(s.ctx, "jane-and-john")
	s.Require().NoError(err)
	s.Equal("tropical-paradise", got.TemplateID)
}

func (s *MemoryStoreSuite) TestFindReturnsCopy() {
	s.Require().NoError(s.store.Put(s.ctx, models.Wedding{Slug: "abc", BrideName: "A"}))

	got, err := s.store.FindBySlug(s.ctx, "abc")
	s.Require().NoError(err)
	got.BrideName = "mutated"

	again, err := s.store.FindBySlug(s.ctx, "abc")
	s.Require().NoError(err)
	s.Equal("A", again.BrideName)
}

func (s *MemoryStoreSuite) TestSeedLoadsDemoWeddings() {
	s.Require().NoError(Seed(s.ctx, s.store))

	first, err := s.store.FindBySlug(s.ctx, "janith-and-sanduni")
	s.Require().NoError(err)
	s.Equal("elegant-rose", first.TemplateID)

	second, err := s.store.FindBySlug(s.ctx, "jane-and-john")
	s.Require().NoError(err)
	s.Equal("tropical-paradise", second.TemplateID)
	s.Require().NotNil(second.CustomColors)
	s.Equal("#e91e63", second.CustomColors.Primary)
}
