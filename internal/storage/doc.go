// Package storage persists the pipeline's working state (the merged event
// dataset, enrichment caches, scrape status, and monthly archives) as flat
// JSON files in a local data directory, synchronized with a durable object
// store (Cloudflare R2) at run start and run end.
//
// Missing or corrupt state is never fatal: loads degrade to empty state and
// the pipeline produces a fresh dataset.
package storage
