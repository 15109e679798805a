// Package tm wraps the Ticketmaster Discovery API. It serves two roles:
// pulling venue calendars directly for venues whose own sites are hostile
// to scraping, and classifying event names into categories via the
// attractions endpoint. Classification results are cached across runs to
// keep API usage bounded.
package tm
