// Package spotify resolves event performers to Spotify artist profiles.
// Resolution is layered to keep API usage small: a cross-run cache first,
// then Spotify links scraped from the venue's own event page, and only
// then a budgeted number of catalog searches per run. Ambiguous search
// results are cached negatively rather than guessed at.
package spotify
