package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"wedify/internal/catalog"
	"wedify/internal/render"
	"wedify/internal/wedding/models"
	"wedify/internal/wedding/store/memory"
	dErrors "wedify/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memory.Store
	service *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.New()

	registry, err := catalog.Load()
	s.Require().NoError(err)
	dispatcher := render.NewDispatcher(registry)

	s.service = New(s.store, dispatcher)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestGetWedding() {
	w := models.Wedding{Slug: "janith-and-sanduni", BrideName: "Sanduni Perera", TemplateID: "elegant-rose"}
	s.Require().NoError(s.store.Put(s.ctx, w))

	got, err := s.service.GetWedding(s.ctx, "janith-and-sanduni")
	s.Require().NoError(err)
	s.Equal("Sanduni Perera", got.BrideName)
}

func (s *ServiceSuite) TestGetWeddingUnknownSlug() {
	_, err := s.service.GetWedding(s.ctx, "valid-but-unknown")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestGetInvitationRendersWedding() {
	s.Require().NoError(s.store.Put(s.ctx, models.Wedding{
		Slug:       "jane-and-john",
		BrideName:  "Jane Smith",
		GroomName:  "John Doe",
		TemplateID: "tropical-paradise",
	}))

	inv, err := s.service.GetInvitation(s.ctx, "jane-and-john")
	s.Require().NoError(err)
	s.Equal("tropical-paradise", inv.TemplateID)
	s.Equal(catalog.VariantTropical, inv.Variant)
	s.Equal("Jane Smith & John Doe", inv.Headline)
}

func (s *ServiceSuite) TestGetInvitationUnknownSlug() {
	_, err := s.service.GetInvitation(s.ctx, "valid-but-unknown")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

type failingStore struct{ err error }

func (f failingStore) FindBySlug(context.Context, string) (*models.Wedding, error) {
	return nil, f.err
}

func (s *ServiceSuite) TestStoreFailureMapsToInternal() {
	registry, err := catalog.Load()
	s.Require().NoError(err)

	svc := New(failingStore{err: errors.New("connection refused")}, render.NewDispatcher(registry))
	_, err = svc.GetWedding(s.ctx, "janith-and-sanduni")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.False(dErrors.HasCode(err, dErrors.CodeNotFound))
}
