package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/atlgigs/gig-scraper/internal/event"
	"github.com/atlgigs/gig-scraper/internal/pipeline"
	"github.com/atlgigs/gig-scraper/internal/storage"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report the health of the last scrape run",
		RunE:  runStatus,
	}
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, store, err := setup(ctx)
	if err != nil {
		return err
	}

	for _, name := range []string{storage.StatusFile, storage.EventsFile} {
		if err := store.Pull(ctx, name); err != nil {
			return fmt.Errorf("downloading %s: %w", name, err)
		}
	}

	status := pipeline.NewStatus()
	found, err := store.LoadJSON(storage.StatusFile, status)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no status file in %s; run a scrape first", cfg.DataDir)
	}

	var events []*event.Event
	if _, err := store.LoadJSON(storage.EventsFile, &events); err != nil {
		return err
	}

	now := time.Now().UTC()
	stale := 0
	for _, e := range events {
		if event.Stale(e, now, cfg.StaleWindow()) {
			stale++
		}
	}

	if flagFormat == "json" {
		out := struct {
			*pipeline.Status
			StaleEvents int `json:"stale_events"`
		}{status, stale}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Last run: %s\n", status.LastRun.Format(time.RFC3339))
	fmt.Printf("Events: %d total, %d stale\n", status.TotalEvents, stale)

	names := make([]string, 0, len(status.Venues))
	for name := range status.Venues {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		vs := status.Venues[name]
		if vs.Success {
			fmt.Printf("  ok     %-24s %d events\n", name, vs.EventCount)
			continue
		}
		fmt.Printf("  FAIL   %-24s %s", name, vs.Error)
		if !vs.LastSuccess.IsZero() {
			fmt.Printf(" (last success %s, %d events)", vs.LastSuccess.Format("2006-01-02"), vs.LastSuccessCount)
		}
		fmt.Println()
	}

	if !status.AllSuccess {
		os.Exit(ExitError)
	}
	return nil
}
