// Package pipeline orchestrates a scrape run: every registered venue is
// fetched in order, the results are normalized, slugged, validated, and
// merged against the previous published dataset, enrichment passes fill
// in categories and Spotify links, and the resulting artifacts are
// written locally and uploaded. Venue failures degrade the run rather
// than aborting it; the status artifact records exactly what happened.
package pipeline
