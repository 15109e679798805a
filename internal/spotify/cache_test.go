package spotify

import (
	"testing"
	"time"
)

func TestCacheSourceRanking(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("scraped link never clobbers event source", func(t *testing.T) {
		c := NewCache()
		c.Set("Mogwai", "https://open.spotify.com/artist/real", "", "event", now)
		c.Set("Mogwai", "https://open.spotify.com/artist/scraped", "", "html", now)

		entry := c.Get("Mogwai", now)
		if entry == nil || *entry.SpotifyURL != "https://open.spotify.com/artist/real" {
			t.Errorf("event-sourced URL was overwritten: %+v", entry)
		}
	})

	t.Run("higher trust upgrades", func(t *testing.T) {
		c := NewCache()
		c.Set("Mogwai", "https://open.spotify.com/artist/searched", "id1", "search:exact", now)
		c.Set("Mogwai", "https://open.spotify.com/artist/published", "", "event", now)

		entry := c.Get("Mogwai", now)
		if entry == nil || *entry.SpotifyURL != "https://open.spotify.com/artist/published" {
			t.Errorf("event source should win: %+v", entry)
		}
	})

	t.Run("miss never downgrades a positive", func(t *testing.T) {
		c := NewCache()
		c.Set("Mogwai", "https://open.spotify.com/artist/real", "", "html", now)
		c.SetMiss("Mogwai", "search-none:ambiguous", now)

		entry := c.Get("Mogwai", now)
		if entry == nil || entry.SpotifyURL == nil {
			t.Errorf("positive entry was downgraded: %+v", entry)
		}
	})
}

func TestCacheNegativeTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	c := NewCache()
	c.TTL = 24 * time.Hour
	c.SetMiss("Obscure Act", "search-none:no-match", now)
	c.Set("Mogwai", "https://open.spotify.com/artist/real", "", "search:exact", now)

	if c.Get("Obscure Act", now.Add(time.Hour)) == nil {
		t.Error("fresh negative should hit")
	}
	if c.Get("Obscure Act", now.Add(48*time.Hour)) != nil {
		t.Error("expired negative should miss")
	}
	if c.Get("Mogwai", now.Add(400*24*time.Hour)) == nil {
		t.Error("positive entries never expire")
	}
}

func TestCacheKeyNormalization(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	c := NewCache()
	c.Set("Sylvan Esso feat. Flock of Dimes", "https://open.spotify.com/artist/se", "", "event", now)

	if c.Get("SYLVAN ESSO", now) == nil {
		t.Error("lookups should normalize the same way as writes")
	}
	if c.Size() != 1 {
		t.Errorf("size = %d", c.Size())
	}
}
