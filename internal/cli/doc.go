// Package cli implements the command-line interface for gig-scraper.
//
// The root command runs the full scrape pipeline; subcommands run the
// Spotify enrichment pass on its own and report the health of the last
// run. All commands share configuration loaded from the environment,
// with a few flags for local overrides.
package cli
