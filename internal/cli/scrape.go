package cli

import (
	"fmt"
	"strings"

	"github.com/atlgigs/gig-scraper/internal/adapter"
	"github.com/atlgigs/gig-scraper/internal/pipeline"
	"github.com/spf13/cobra"
)

var flagVenues string

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run the full scrape-merge-enrich-publish pipeline",
		RunE:  runScrape,
	}
	cmd.Flags().StringVar(&flagVenues, "venues", "", "Comma-separated venue names to scrape (default: all)")
	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, store, err := setup(ctx)
	if err != nil {
		return err
	}

	registry := adapter.Build(cfg)
	if flagVenues != "" {
		registry, err = filterRegistry(registry, flagVenues)
		if err != nil {
			return err
		}
	}

	runner := pipeline.NewRunner(cfg, store, registry)
	status, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if !status.AnySuccess {
		return fmt.Errorf("every venue failed; dataset not refreshed")
	}
	return nil
}

func filterRegistry(full *adapter.Registry, venues string) (*adapter.Registry, error) {
	filtered := adapter.NewRegistry()
	for _, raw := range strings.Split(venues, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		a, ok := full.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown venue %q (known: %s)", name, strings.Join(full.Names(), ", "))
		}
		filtered.Register(a)
	}
	if len(filtered.Names()) == 0 {
		return nil, fmt.Errorf("no venues selected")
	}
	return filtered, nil
}
