package spotify

import "time"

// CacheEntry is one cached artist resolution. A nil SpotifyURL marks a
// negative result: we looked, and either found nothing or could not
// disambiguate.
type CacheEntry struct {
	SpotifyURL *string   `json:"spotify_url"`
	SpotifyID  string    `json:"spotify_id,omitempty"`
	Source     string    `json:"source"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Cache maps normalized artist names to resolutions across runs. The
// zero TTL means negative entries never expire.
type Cache struct {
	ByName map[string]*CacheEntry `json:"by_name"`
	TTL    time.Duration          `json:"-"`
}

// NewCache creates an empty artist cache.
func NewCache() *Cache {
	return &Cache{ByName: make(map[string]*CacheEntry)}
}

// Get returns the cached resolution for a name, or nil when absent.
// Expired negative entries are treated as absent so the artist gets
// retried; positive entries never expire.
func (c *Cache) Get(name string, now time.Time) *CacheEntry {
	entry, ok := c.ByName[NormalizeName(name)]
	if !ok {
		return nil
	}
	if entry.SpotifyURL == nil && c.TTL > 0 && now.Sub(entry.UpdatedAt) > c.TTL {
		return nil
	}
	return entry
}

// Set records a positive resolution. An existing positive entry is only
// overwritten by a source of equal or higher trust, so a scraped link
// never clobbers one the venue published directly.
func (c *Cache) Set(name, spotifyURL, spotifyID, source string, now time.Time) {
	key := NormalizeName(name)
	if c.ByName == nil {
		c.ByName = make(map[string]*CacheEntry)
	}
	if existing, ok := c.ByName[key]; ok && existing.SpotifyURL != nil {
		if sourceRank(source) < sourceRank(existing.Source) {
			return
		}
	}
	c.ByName[key] = &CacheEntry{
		SpotifyURL: &spotifyURL,
		SpotifyID:  spotifyID,
		Source:     source,
		UpdatedAt:  now,
	}
}

// SetMiss records a negative resolution. Positive entries are never
// downgraded to negative.
func (c *Cache) SetMiss(name, source string, now time.Time) {
	key := NormalizeName(name)
	if c.ByName == nil {
		c.ByName = make(map[string]*CacheEntry)
	}
	if existing, ok := c.ByName[key]; ok && existing.SpotifyURL != nil {
		return
	}
	c.ByName[key] = &CacheEntry{
		Source:    source,
		UpdatedAt: now,
	}
}

// Size returns the number of cached entries.
func (c *Cache) Size() int {
	return len(c.ByName)
}

func sourceRank(source string) int {
	switch {
	case source == "event" || source == "tm-attraction":
		return 2
	case source == "html":
		return 1
	default:
		return 0
	}
}
