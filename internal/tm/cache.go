package tm

import (
	"strings"
	"time"

	"github.com/atlgigs/gig-scraper/internal/category"
)

// SourceNone marks a cached lookup that found no attraction. Negative
// entries keep repeat misses from burning API calls every run.
const SourceNone = "tm-none"

// CacheEntry is one cached classification lookup.
type CacheEntry struct {
	Category  category.Category `json:"category,omitempty"`
	Source    string            `json:"source"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Cache maps normalized performer names to classification results. The
// zero TTL means entries never expire.
type Cache struct {
	ByName map[string]*CacheEntry `json:"by_name"`
	TTL    time.Duration          `json:"-"`
}

// NewCache creates an empty classification cache.
func NewCache() *Cache {
	return &Cache{ByName: make(map[string]*CacheEntry)}
}

// Get returns the cached entry for a name, or nil when absent. Negative
// entries honor the TTL so a miss gets retried eventually; positive
// entries are kept for good.
func (c *Cache) Get(name string, now time.Time) *CacheEntry {
	entry, ok := c.ByName[normalizeKey(name)]
	if !ok {
		return nil
	}
	if entry.Source == SourceNone && c.TTL > 0 && now.Sub(entry.UpdatedAt) > c.TTL {
		return nil
	}
	return entry
}

// Set records a classification result.
func (c *Cache) Set(name string, cat category.Category, source string, now time.Time) {
	if c.ByName == nil {
		c.ByName = make(map[string]*CacheEntry)
	}
	c.ByName[normalizeKey(name)] = &CacheEntry{
		Category:  cat,
		Source:    source,
		UpdatedAt: now,
	}
}

// SetMiss records a negative lookup.
func (c *Cache) SetMiss(name string, now time.Time) {
	if c.ByName == nil {
		c.ByName = make(map[string]*CacheEntry)
	}
	c.ByName[normalizeKey(name)] = &CacheEntry{
		Source:    SourceNone,
		UpdatedAt: now,
	}
}

// Size returns the number of cached entries.
func (c *Cache) Size() int {
	return len(c.ByName)
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
