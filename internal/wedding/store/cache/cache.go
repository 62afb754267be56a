// Package cache wraps a wedding store with a Redis cache-aside layer.
// Invitation pages are read-heavy and effectively immutable between dashboard
// edits, so short TTLs buy most of the win. Cache failures always degrade to
// the backing store; a broken Redis never breaks a page view.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"wedify/internal/platform/metrics"
	"wedify/internal/platform/redis"
	"wedify/internal/wedding/models"
)

const keyPrefix = "wedding:"

// Store reads through Redis in front of another wedding store.
type Store struct {
	next    Finder
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Finder is the read surface of the wrapped store.
type Finder interface {
	FindBySlug(ctx context.Context, slug string) (*models.Wedding, error)
}

func New(next Finder, client *redis.Client, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) *Store {
	return &Store{next: next, client: client, ttl: ttl, logger: logger, metrics: m}
}

func (s *Store) FindBySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	key := keyPrefix + slug

	data, err := s.client.Get(ctx, key).Bytes()
	if err == nil {
		var w models.Wedding
		if jsonErr := json.Unmarshal(data, &w); jsonErr == nil {
			if s.metrics != nil {
				s.metrics.CacheHits.Inc()
			}
			return &w, nil
		}
		// Corrupt entry: drop it and fall through to the store.
		_ = s.client.Del(ctx, key).Err()
	} else if !errors.Is(err, goredis.Nil) {
		s.logger.WarnContext(ctx, "wedding cache read failed", "slug", slug, "error", err)
	}
	if s.metrics != nil {
		s.metrics.CacheMisses.Inc()
	}

	w, err := s.next.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(w); jsonErr == nil {
		if setErr := s.client.Set(ctx, key, data, s.ttl).Err(); setErr != nil {
			s.logger.WarnContext(ctx, "wedding cache write failed", "slug", slug, "error", setErr)
		}
	}
	return w, nil
}

// Invalidate removes a cached wedding, for use when the owning application
// signals a content change.
func (s *Store) Invalidate(ctx context.Context, slug string) error {
	return s.client.Del(ctx, keyPrefix+slug).Err()
}
