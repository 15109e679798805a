package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atlgigs/gig-scraper/internal/logger"
)

// Well-known artifact names. These are the keys in the object store and the
// file names under the data directory; the frontend fetches them verbatim.
const (
	EventsFile       = "events.json"
	StatusFile       = "scrape-status.json"
	ArtistCacheFile  = "artist-cache.json"
	SpotifyCacheFile = "artist-spotify-cache.json"
)

// ObjectStore is the durable-state façade. Implementations must treat a
// missing key as ok=false, not an error, so a first-ever run starts clean.
type ObjectStore interface {
	Download(ctx context.Context, key string) (data []byte, ok bool, err error)
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}

// Store manages the local data directory and its object-store mirror.
type Store struct {
	dataDir string
	remote  ObjectStore
}

// New creates a Store rooted at dataDir, creating the directory if needed.
// remote may be nil for local-only operation.
func New(dataDir string, remote ObjectStore) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{dataDir: dataDir, remote: remote}, nil
}

// Path returns the local path for an artifact name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// Pull refreshes the local copy of an artifact from the object store. A key
// absent remotely, or no remote at all, leaves the local file untouched and
// is not an error.
func (s *Store) Pull(ctx context.Context, name string) error {
	if s.remote == nil {
		return nil
	}
	data, ok, err := s.remote.Download(ctx, name)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", name, err)
	}
	if !ok {
		return nil
	}
	if err := os.WriteFile(s.Path(name), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Push uploads local artifacts to the object store. Files missing locally
// are skipped. With no remote configured, Push is a no-op.
func (s *Store) Push(ctx context.Context, names ...string) error {
	if s.remote == nil {
		return nil
	}
	for _, name := range names {
		data, err := os.ReadFile(s.Path(name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("reading %s: %w", name, err)
		}
		if err := s.remote.Upload(ctx, name, data, "application/json"); err != nil {
			return fmt.Errorf("uploading %s: %w", name, err)
		}
	}
	return nil
}

// LoadJSON reads and decodes a local artifact into v. Returns found=false
// when the file does not exist or holds invalid JSON; a decode failure is
// logged and treated as empty state rather than aborting the run.
func (s *Store) LoadJSON(name string, v interface{}) (found bool, err error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn("corrupt state file, starting empty", logger.Fields{
			"file":  name,
			"cause": err.Error(),
		})
		return false, nil
	}
	return true, nil
}

// SaveJSON encodes v with two-space indentation (keeps artifacts diffable)
// and writes it to the local data directory.
func (s *Store) SaveJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := os.WriteFile(s.Path(name), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
