package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// FileStore keeps one pretty-printed JSON document per page under a cache
// directory. It is the default backend.
type FileStore struct {
	dir    string
	logger zerolog.Logger
}

// NewFileStore creates a file-backed store rooted at dir. The directory is
// created lazily on the first Save.
func NewFileStore(dir string, logger zerolog.Logger) *FileStore {
	return &FileStore{
		dir:    dir,
		logger: logger,
	}
}

// Path returns the cache file path for key. Pure: no I/O.
func (s *FileStore) Path(key Key) string {
	return filepath.Join(s.dir, key.Filename())
}

// Load reads the entry for key, returning ErrCacheMiss when the file is
// missing, unreadable, malformed, or at least maxAge old.
func (s *FileStore) Load(_ context.Context, key Key, maxAge time.Duration) (*Entry, error) {
	path := s.Path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", path).Msg("Cache read failed, treating as miss")
		}
		CacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("Cache entry malformed, treating as miss")
		CacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	if entry.IsExpired(maxAge) {
		s.logger.Debug().
			Str("path", path).
			Dur("age", entry.Age()).
			Dur("max_age", maxAge).
			Msg("Cache entry expired")
		CacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	CacheHits.WithLabelValues("file").Inc()
	s.logger.Debug().Str("path", path).Int("models", len(entry.Models)).Msg("Cache hit")
	return &entry, nil
}

// Save writes the entry via a temp file and rename, creating parent
// directories as needed. A partial write never clobbers a valid entry.
func (s *FileStore) Save(_ context.Context, key Key, entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("cache entry cannot be nil")
	}

	path := s.Path(key)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		CacheErrors.WithLabelValues("save").Inc()
		return fmt.Errorf("create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		CacheErrors.WithLabelValues("save").Inc()
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), key.Filename()+".tmp*")
	if err != nil {
		CacheErrors.WithLabelValues("save").Inc()
		return fmt.Errorf("create temp cache file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		CacheErrors.WithLabelValues("save").Inc()
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		CacheErrors.WithLabelValues("save").Inc()
		return fmt.Errorf("close temp cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		CacheErrors.WithLabelValues("save").Inc()
		return fmt.Errorf("rename cache file: %w", err)
	}

	s.logger.Debug().Str("path", path).Int("models", len(entry.Models)).Msg("Saved cache entry")
	return nil
}
