package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/atlgigs/gig-scraper/internal/adapter"
	"github.com/atlgigs/gig-scraper/internal/config"
	"github.com/atlgigs/gig-scraper/internal/event"
	"github.com/atlgigs/gig-scraper/internal/logger"
	"github.com/atlgigs/gig-scraper/internal/spotify"
	"github.com/atlgigs/gig-scraper/internal/storage"
	"github.com/atlgigs/gig-scraper/internal/tm"
)

// Runner executes a full scrape-merge-enrich-publish cycle.
type Runner struct {
	cfg      *config.Config
	store    *storage.Store
	registry *adapter.Registry

	now func() time.Time
}

// NewRunner wires a runner from configuration. The registry decides which
// adapters participate; the store decides where artifacts land.
func NewRunner(cfg *config.Config, store *storage.Store, registry *adapter.Registry) *Runner {
	return &Runner{
		cfg:      cfg,
		store:    store,
		registry: registry,
		now:      time.Now,
	}
}

var stateFiles = []string{
	storage.EventsFile,
	storage.StatusFile,
	storage.ArtistCacheFile,
	storage.SpotifyCacheFile,
}

// Run scrapes every registered venue, merges against the previous
// dataset, enriches, and publishes artifacts. A venue failure is recorded
// in the status artifact and never aborts the run; Run errors only on
// infrastructure failures (state I/O).
func (r *Runner) Run(ctx context.Context) (*Status, error) {
	now := r.now().UTC()
	today := now.Format("2006-01-02")

	for _, name := range stateFiles {
		if err := r.store.Pull(ctx, name); err != nil {
			logger.Warn("state download failed", logger.Fields{"file": name, "error": err.Error()})
		}
	}

	var previous []*event.Event
	if _, err := r.store.LoadJSON(storage.EventsFile, &previous); err != nil {
		return nil, fmt.Errorf("loading previous events: %w", err)
	}
	prevStatus := NewStatus()
	if _, err := r.store.LoadJSON(storage.StatusFile, prevStatus); err != nil {
		return nil, fmt.Errorf("loading previous status: %w", err)
	}

	tmCache := tm.NewCache()
	if _, err := r.store.LoadJSON(storage.ArtistCacheFile, tmCache); err != nil {
		return nil, fmt.Errorf("loading artist cache: %w", err)
	}
	tmCache.TTL = r.cfg.CacheNegativeTTL

	spCache := spotify.NewCache()
	if _, err := r.store.LoadJSON(storage.SpotifyCacheFile, spCache); err != nil {
		return nil, fmt.Errorf("loading spotify cache: %w", err)
	}
	spCache.TTL = r.cfg.CacheNegativeTTL

	status := NewStatus()
	incoming := r.scrape(ctx, status, prevStatus, now)

	for _, e := range incoming {
		e.NormalizePrice()
	}
	event.AssignSlugs(incoming)
	incoming = r.dropInvalid(incoming)

	merged := event.Merge(previous, incoming, now, r.cfg.FreshnessWindow())

	r.enrichCategories(ctx, merged, tmCache, spCache, now)
	r.enrichSpotify(ctx, merged, spCache, now)

	event.SortByDate(merged)
	status.Finalize(len(merged), now)

	artifacts, err := r.publish(ctx, merged, status, tmCache, spCache, today)
	if err != nil {
		return status, err
	}

	logger.Info("run complete", logger.Fields{
		"venues":       len(status.Venues),
		"total_events": status.TotalEvents,
		"all_success":  status.AllSuccess,
		"new_events":   countNew(merged),
		"tm_lookups":   logger.Counter("tm.lookups"),
		"searches":     logger.Counter("spotify.searches"),
		"artifacts":    artifacts,
	})
	return status, nil
}

// scrape runs each adapter in registration order, isolating failures.
func (r *Runner) scrape(ctx context.Context, status, prevStatus *Status, now time.Time) []*event.Event {
	var incoming []*event.Event

	for _, name := range r.registry.Names() {
		a, ok := r.registry.Get(name)
		if !ok {
			continue
		}

		start := time.Now()
		events, err := fetchVenue(ctx, a)
		logger.RecordTiming("scrape", time.Since(start))

		if err != nil {
			status.RecordFailure(name, err, prevStatus, now)
			logger.Error("venue scrape failed", logger.Fields{"venue": name}, err)
			logger.Incr("scrape.failures", 1)
			continue
		}

		status.RecordSuccess(name, len(events), now)
		logger.Info("venue scraped", logger.Fields{"venue": name, "events": len(events)})
		incoming = append(incoming, events...)
	}
	return incoming
}

// fetchVenue converts an adapter panic into a per-venue error, so a
// malformed page on one venue cannot abort the run.
func fetchVenue(ctx context.Context, a adapter.Adapter) (events []*event.Event, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			events = nil
			err = fmt.Errorf("adapter panic: %v", rec)
		}
	}()
	return a.Fetch(ctx)
}

func (r *Runner) dropInvalid(events []*event.Event) []*event.Event {
	valid := events[:0]
	for _, e := range events {
		if err := event.Validate(e); err != nil {
			logger.Warn("dropping invalid event", logger.Fields{
				"venue": e.Venue,
				"slug":  e.Slug,
				"error": err.Error(),
			})
			logger.Incr("events.invalid", 1)
			continue
		}
		valid = append(valid, e)
	}
	return valid
}

func (r *Runner) enrichCategories(ctx context.Context, merged []*event.Event, tmCache *tm.Cache, spCache *spotify.Cache, now time.Time) {
	if r.cfg.TMAPIKey == "" {
		return
	}

	enricher := tm.NewEnricher(tm.NewClient(r.cfg.TMAPIKey), tmCache)
	if r.cfg.UseTMAPI {
		enricher.SkipVenues = map[string]bool{
			"State Farm Arena": true,
			"The Masquerade":   true,
			"Center Stage":     true,
		}
	}
	enricher.SeedSpotify = func(name, url string) {
		spCache.Set(name, url, "", "tm-attraction", now)
	}
	enricher.EnrichCategories(ctx, merged, now)
}

func (r *Runner) enrichSpotify(ctx context.Context, merged []*event.Event, spCache *spotify.Cache, now time.Time) {
	if r.cfg.SpotifyClientID == "" || r.cfg.SpotifyClientSecret == "" {
		return
	}

	client := spotify.NewClient(r.cfg.SpotifyClientID, r.cfg.SpotifyClientSecret)
	enricher := spotify.NewEnricher(client, spCache, r.cfg.SpotifySearchLimit)

	pages := adapter.NewClient(r.cfg.RequestDelay)
	enricher.FetchPage = func(ctx context.Context, url string) (*goquery.Document, error) {
		return pages.GetHTML(ctx, url, nil)
	}

	enricher.SeedFromEvents(merged, now)
	enricher.Enrich(ctx, merged, now)
}

// publish writes all artifacts locally and uploads them. Returns the
// artifact names written.
func (r *Runner) publish(ctx context.Context, merged []*event.Event, status *Status, tmCache *tm.Cache, spCache *spotify.Cache, today string) ([]string, error) {
	_, archives := PartitionPast(merged, today)

	names := make([]string, 0, len(stateFiles)+len(archives))

	if err := r.store.SaveJSON(storage.EventsFile, merged); err != nil {
		return nil, fmt.Errorf("saving events: %w", err)
	}
	names = append(names, storage.EventsFile)

	for month, past := range archives {
		name := ArchiveFileName(month)
		event.SortByDate(past)
		if err := r.store.SaveJSON(name, past); err != nil {
			return nil, fmt.Errorf("saving archive %s: %w", name, err)
		}
		names = append(names, name)
	}

	if err := r.store.SaveJSON(storage.StatusFile, status); err != nil {
		return nil, fmt.Errorf("saving status: %w", err)
	}
	if err := r.store.SaveJSON(storage.ArtistCacheFile, tmCache); err != nil {
		return nil, fmt.Errorf("saving artist cache: %w", err)
	}
	if err := r.store.SaveJSON(storage.SpotifyCacheFile, spCache); err != nil {
		return nil, fmt.Errorf("saving spotify cache: %w", err)
	}
	names = append(names, storage.StatusFile, storage.ArtistCacheFile, storage.SpotifyCacheFile)

	if err := r.store.Push(ctx, names...); err != nil {
		return names, fmt.Errorf("uploading artifacts: %w", err)
	}
	return names, nil
}

func countNew(events []*event.Event) int {
	n := 0
	for _, e := range events {
		if e.IsNew {
			n++
		}
	}
	return n
}
