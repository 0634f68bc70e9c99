package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisStore keeps page snapshots in Redis under models:page:* keys. Entries
// are stored without a Redis TTL: staleness is decided at read time, so an
// expired entry stays available for the stale-cache fallback, matching the
// file backend.
type RedisStore struct {
	redis  *redis.Client
	logger zerolog.Logger
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client, logger zerolog.Logger) *RedisStore {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &RedisStore{
		redis:  client,
		logger: logger,
	}
}

// Load reads the entry for key, returning ErrCacheMiss when the key is
// absent, the payload is malformed, or the entry is at least maxAge old.
func (s *RedisStore) Load(ctx context.Context, key Key, maxAge time.Duration) (*Entry, error) {
	data, err := s.redis.Get(ctx, key.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn().Err(err).Str("key", key.String()).Msg("Redis read failed, treating as miss")
		}
		CacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		s.logger.Warn().Err(err).Str("key", key.String()).Msg("Cache entry malformed, treating as miss")
		CacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	if entry.IsExpired(maxAge) {
		s.logger.Debug().
			Str("key", key.String()).
			Dur("age", entry.Age()).
			Dur("max_age", maxAge).
			Msg("Cache entry expired")
		CacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	CacheHits.WithLabelValues("redis").Inc()
	return &entry, nil
}

// Save writes or overwrites the entry for key. The SET is atomic, so a
// failed write leaves any previous entry intact.
func (s *RedisStore) Save(ctx context.Context, key Key, entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("cache entry cannot be nil")
	}

	data, err := json.Marshal(entry)
	if err != nil {
		CacheErrors.WithLabelValues("save").Inc()
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := s.redis.Set(ctx, key.String(), data, 0).Err(); err != nil {
		CacheErrors.WithLabelValues("save").Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	s.logger.Debug().Str("key", key.String()).Int("models", len(entry.Models)).Msg("Saved cache entry")
	return nil
}
