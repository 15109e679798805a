package tm

import (
	"testing"
	"time"

	"github.com/atlgigs/gig-scraper/internal/category"
)

func TestCache(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("positive entries never expire", func(t *testing.T) {
		c := NewCache()
		c.TTL = time.Hour
		c.Set("Mogwai", category.Concerts, "tm", now)

		entry := c.Get("  MOGWAI ", now.Add(48*time.Hour))
		if entry == nil {
			t.Fatal("expected a hit despite TTL")
		}
		if entry.Category != category.Concerts {
			t.Errorf("category = %q", entry.Category)
		}
	})

	t.Run("negative entries expire with TTL", func(t *testing.T) {
		c := NewCache()
		c.TTL = time.Hour
		c.SetMiss("Obscure Act", now)

		if c.Get("Obscure Act", now.Add(30*time.Minute)) == nil {
			t.Error("fresh negative entry should hit")
		}
		if c.Get("Obscure Act", now.Add(2*time.Hour)) != nil {
			t.Error("expired negative entry should miss")
		}
	})

	t.Run("zero TTL keeps negatives forever", func(t *testing.T) {
		c := NewCache()
		c.SetMiss("Obscure Act", now)

		if c.Get("Obscure Act", now.Add(365*24*time.Hour)) == nil {
			t.Error("negative entry should persist without TTL")
		}
	})

	t.Run("deserialized cache accepts writes", func(t *testing.T) {
		var c Cache
		c.Set("Mogwai", category.Concerts, "tm", now)
		if c.Size() != 1 {
			t.Errorf("size = %d", c.Size())
		}
	})
}
