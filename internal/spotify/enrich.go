package spotify

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/atlgigs/gig-scraper/internal/event"
	"github.com/atlgigs/gig-scraper/internal/logger"
)

// Searcher is the subset of the API client enrichment needs.
type Searcher interface {
	SearchArtists(ctx context.Context, name string) ([]Artist, error)
}

// Enricher attaches Spotify profile URLs to event artists.
type Enricher struct {
	search Searcher
	cache  *Cache
	budget int

	// FetchPage, when set, retrieves an event's info page so profile
	// links published by the venue can be harvested before searching.
	FetchPage func(ctx context.Context, url string) (*goquery.Document, error)
}

// NewEnricher creates an enricher with a per-run search budget. A zero
// or negative budget disables searching; cache and page links still
// apply.
func NewEnricher(search Searcher, cache *Cache, budget int) *Enricher {
	return &Enricher{search: search, cache: cache, budget: budget}
}

// SeedFromEvents records Spotify URLs the adapters scraped directly off
// event data. These outrank anything enrichment could derive.
func (e *Enricher) SeedFromEvents(events []*event.Event, now time.Time) {
	for _, ev := range events {
		for _, a := range ev.Artists {
			if a.SpotifyURL != "" {
				e.cache.Set(a.Name, a.SpotifyURL, "", "event", now)
			}
		}
	}
}

// Enrich resolves artists on future events, cheapest source first: the
// cross-run cache, then links on the event's own page, then catalog
// search until the budget runs out.
func (e *Enricher) Enrich(ctx context.Context, events []*event.Event, now time.Time) {
	today := now.Format("2006-01-02")
	remaining := e.budget

	for _, ev := range events {
		if ev.Date < today {
			continue
		}

		var pageLinks map[string]string
		pageFetched := false

		for i := range ev.Artists {
			a := &ev.Artists[i]
			if a.SpotifyURL != "" || a.Name == "" || IsNonArtist(a.Name) {
				continue
			}

			if entry := e.cache.Get(a.Name, now); entry != nil {
				if entry.SpotifyURL != nil {
					a.SpotifyURL = *entry.SpotifyURL
					logger.Incr("spotify.cache_hits", 1)
				}
				continue
			}

			if !pageFetched && ev.InfoURL != "" && e.FetchPage != nil {
				pageFetched = true
				pageLinks = e.harvestPage(ctx, ev)
			}
			if url, ok := matchPageLink(pageLinks, ev, a.Name); ok {
				a.SpotifyURL = url
				e.cache.Set(a.Name, url, "", "html", now)
				logger.Incr("spotify.html_links", 1)
				continue
			}

			if remaining <= 0 {
				continue
			}
			remaining--
			e.searchArtist(ctx, a, genreHints(ev), now)
		}
	}

	if remaining <= 0 && e.budget > 0 {
		logger.Info("spotify search budget exhausted", logger.Fields{"budget": e.budget})
	}
}

func (e *Enricher) searchArtist(ctx context.Context, a *event.Artist, genres []string, now time.Time) {
	results, err := e.search.SearchArtists(ctx, a.Name)
	if err != nil {
		logger.Warn("spotify search failed", logger.Fields{"artist": a.Name, "error": err.Error()})
		logger.Incr("spotify.search_errors", 1)
		return
	}
	logger.Incr("spotify.searches", 1)

	picked, reason := PickArtist(a.Name, results, genres)
	if picked == nil {
		e.cache.SetMiss(a.Name, "search-none:"+reason, now)
		return
	}

	a.SpotifyURL = picked.ExternalURLs.Spotify
	e.cache.Set(a.Name, picked.ExternalURLs.Spotify, picked.ID, "search:"+reason, now)
}

// harvestPage pulls Spotify artist links off the event's info page,
// keyed by lowercased anchor text.
func (e *Enricher) harvestPage(ctx context.Context, ev *event.Event) map[string]string {
	doc, err := e.FetchPage(ctx, ev.InfoURL)
	if err != nil {
		logger.Debug("info page fetch failed", logger.Fields{"url": ev.InfoURL, "error": err.Error()})
		return nil
	}

	links := make(map[string]string)
	doc.Find("a[href*='open.spotify.com/artist']").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		if _, taken := links[text]; !taken {
			links[text] = href
		}
	})
	return links
}

// matchPageLink assigns page links to artists: a lone link belongs to
// the headliner, otherwise the anchor text has to name the artist.
func matchPageLink(links map[string]string, ev *event.Event, name string) (string, bool) {
	if len(links) == 0 {
		return "", false
	}
	if len(links) == 1 && name == ev.Headliner() {
		for _, url := range links {
			return url, true
		}
	}
	want := NormalizeName(name)
	for text, url := range links {
		if NormalizeName(text) == want {
			return url, true
		}
	}
	return "", false
}

func genreHints(ev *event.Event) []string {
	var genres []string
	for _, a := range ev.Artists {
		if a.Genre != "" {
			genres = append(genres, a.Genre)
		}
	}
	return genres
}
