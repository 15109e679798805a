package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/atlgigs/gig-scraper/internal/adapter"
	"github.com/atlgigs/gig-scraper/internal/event"
	"github.com/atlgigs/gig-scraper/internal/spotify"
	"github.com/atlgigs/gig-scraper/internal/storage"
	"github.com/spf13/cobra"
)

var flagBudget int

func newSpotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spotify",
		Short: "Run the Spotify enrichment pass against the published dataset",
		Long: `Re-runs Spotify artist resolution over the current events.json
without scraping. Useful after raising the search budget or clearing
negative cache entries.`,
		RunE: runSpotify,
	}
	cmd.Flags().IntVar(&flagBudget, "budget", 0, "Search budget for this pass (default: SPOTIFY_SEARCH_LIMIT)")
	return cmd
}

func runSpotify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, store, err := setup(ctx)
	if err != nil {
		return err
	}
	if cfg.SpotifyClientID == "" || cfg.SpotifyClientSecret == "" {
		return fmt.Errorf("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET are required")
	}

	for _, name := range []string{storage.EventsFile, storage.SpotifyCacheFile} {
		if err := store.Pull(ctx, name); err != nil {
			return fmt.Errorf("downloading %s: %w", name, err)
		}
	}

	var events []*event.Event
	found, err := store.LoadJSON(storage.EventsFile, &events)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no events.json in %s; run a scrape first", cfg.DataDir)
	}

	cache := spotify.NewCache()
	if _, err := store.LoadJSON(storage.SpotifyCacheFile, cache); err != nil {
		return err
	}
	cache.TTL = cfg.CacheNegativeTTL

	budget := cfg.SpotifySearchLimit
	if flagBudget > 0 {
		budget = flagBudget
	}

	now := time.Now().UTC()
	client := spotify.NewClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	enricher := spotify.NewEnricher(client, cache, budget)

	pages := adapter.NewClient(cfg.RequestDelay)
	enricher.FetchPage = func(ctx context.Context, url string) (*goquery.Document, error) {
		return pages.GetHTML(ctx, url, nil)
	}

	enricher.SeedFromEvents(events, now)
	enricher.Enrich(ctx, events, now)

	if err := store.SaveJSON(storage.EventsFile, events); err != nil {
		return err
	}
	if err := store.SaveJSON(storage.SpotifyCacheFile, cache); err != nil {
		return err
	}
	return store.Push(ctx, storage.EventsFile, storage.SpotifyCacheFile)
}
