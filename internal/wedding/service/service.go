// Package service orchestrates invitation serving: fetch a tenant's wedding
// by slug, then hand it to the layout dispatcher. Routing strictly precedes
// this fetch, which strictly precedes dispatch.
package service

import (
	"context"
	"errors"
	"log/slog"

	"wedify/internal/render"
	"wedify/internal/wedding/models"
	dErrors "wedify/pkg/domain-errors"
	"wedify/pkg/platform/sentinel"
)

// Store is the external tenant/content collaborator, reachable by slug.
type Store interface {
	FindBySlug(ctx context.Context, slug string) (*models.Wedding, error)
}

// Service resolves slugs to rendered invitations.
type Service struct {
	store      Store
	dispatcher *render.Dispatcher
	logger     *slog.Logger
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New constructs a Service.
func New(store Store, dispatcher *render.Dispatcher, opts ...Option) *Service {
	s := &Service{store: store, dispatcher: dispatcher}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetWedding returns the raw content payload for a slug.
func (s *Service) GetWedding(ctx context.Context, slug string) (*models.Wedding, error) {
	w, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no wedding for this address")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load wedding")
	}
	return w, nil
}

// GetInvitation fetches the wedding for slug and renders it. A slug that
// passes the host grammar but matches no wedding yields CodeNotFound; the
// handler turns that into a tenant-scoped not-found page rather than a
// redirect to the apex.
func (s *Service) GetInvitation(ctx context.Context, slug string) (*render.Invitation, error) {
	w, err := s.GetWedding(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.dispatcher.Render(*w), nil
}
