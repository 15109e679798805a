package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/atlgigs/gig-scraper/internal/config"
	"github.com/atlgigs/gig-scraper/internal/logger"
	"github.com/atlgigs/gig-scraper/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDataDir string
	flagFormat  string
	flagLocal   bool
	flagVerbose bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gig-scraper",
		Short: "Scrape Atlanta live-event listings into a published dataset",
		Long: `Scrapes event listings from Atlanta venues, merges them with the
previously published dataset, enriches categories and Spotify links, and
publishes JSON artifacts locally and to the object store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (overrides DATA_DIR)")
	cmd.PersistentFlags().BoolVar(&flagLocal, "local", false, "Skip object-store sync, run against local files only")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newSpotifyCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}

// setup loads configuration, applies flag overrides, and opens the store.
func setup(ctx context.Context) (*config.Config, *storage.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	var remote storage.ObjectStore
	if !flagLocal && cfg.R2Configured() {
		remote, err = storage.NewR2Store(ctx, cfg.R2AccountID, cfg.R2AccessKeyID, cfg.R2SecretAccessKey, cfg.R2Bucket)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to object store: %w", err)
		}
	}

	store, err := storage.New(cfg.DataDir, remote)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing storage: %w", err)
	}
	return cfg, store, nil
}
