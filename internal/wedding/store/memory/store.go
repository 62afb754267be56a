// Package memory provides the in-memory wedding store used in development
// and tests. It intentionally favors clarity over performance.
package memory

import (
	"context"
	"fmt"
	"sync"

	"wedify/internal/wedding/models"
	"wedify/pkg/platform/sentinel"
)

type Store struct {
	mu       sync.RWMutex
	weddings map[string]models.Wedding
}

func New() *Store {
	return &Store{weddings: make(map[string]models.Wedding)}
}

func (s *Store) Put(_ context.Context, w models.Wedding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weddings[w.Slug] = w
	return nil
}

func (s *Store) FindBySlug(_ context.Context, slug string) (*models.Wedding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if w, ok := s.weddings[slug]; ok {
		return &w, nil
	}
	return nil, fmt.Errorf("wedding %q: %w", slug, sentinel.ErrNotFound)
}
