package tm

import (
	"context"
	"time"

	"github.com/atlgigs/gig-scraper/internal/category"
	"github.com/atlgigs/gig-scraper/internal/event"
	"github.com/atlgigs/gig-scraper/internal/logger"
)

// Enricher reclassifies merged events whose category is only a guess,
// using the attractions endpoint and the cross-run cache.
type Enricher struct {
	client *Client
	cache  *Cache

	// SkipVenues names venues whose categories already come from
	// Ticketmaster and need no second lookup.
	SkipVenues map[string]bool

	// SeedSpotify, when set, receives Spotify profile URLs found on
	// attraction records so the Spotify pass can skip searching them.
	SeedSpotify func(name, url string)
}

// NewEnricher creates a classification enricher backed by the given
// client and cache.
func NewEnricher(client *Client, cache *Cache) *Enricher {
	return &Enricher{client: client, cache: cache}
}

// EnrichCategories upgrades default-category events using Ticketmaster
// classifications. Only future events are looked up; past events keep
// whatever category they last had. API errors skip the event rather
// than failing the run.
func (e *Enricher) EnrichCategories(ctx context.Context, events []*event.Event, now time.Time) {
	today := now.Format("2006-01-02")

	for _, ev := range events {
		if ev.Category != category.Default && ev.Category != category.Misc {
			continue
		}
		if ev.Date < today || e.SkipVenues[ev.Venue] {
			continue
		}

		name := ev.Headliner()
		if name == "" {
			continue
		}

		if known := category.DetectKnownEntity(name); known != "" {
			ev.Category = known
			continue
		}

		if entry := e.cache.Get(name, now); entry != nil {
			if entry.Source != SourceNone && category.Valid(entry.Category) {
				ev.Category = entry.Category
			}
			logger.Incr("tm.cache_hits", 1)
			continue
		}

		attraction, err := e.client.FindAttraction(ctx, name)
		if err != nil {
			logger.Warn("attraction lookup failed", logger.Fields{"artist": name, "error": err.Error()})
			logger.Incr("tm.lookup_errors", 1)
			continue
		}
		logger.Incr("tm.lookups", 1)

		if attraction == nil {
			e.cache.SetMiss(name, now)
			continue
		}

		cat := classify(attraction.Classifications)
		e.cache.Set(name, cat, "tm", now)
		ev.Category = cat

		if e.SeedSpotify != nil {
			for _, link := range attraction.ExternalLinks.Spotify {
				if link.URL != "" {
					e.SeedSpotify(attraction.Name, link.URL)
					break
				}
			}
		}
	}
}

func classify(classifications []Classification) category.Category {
	if len(classifications) == 0 {
		return category.Default
	}
	c := classifications[0]
	return category.MapTMClassification(c.Segment.Name, c.Genre.Name)
}
