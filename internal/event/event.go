package event

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/atlgigs/gig-scraper/internal/category"
)

// Artist is one act on a bill. Index 0 of Event.Artists is the headliner;
// support acts follow in billing order.
type Artist struct {
	Name       string `json:"name"`
	Genre      string `json:"genre,omitempty"`
	SpotifyURL string `json:"spotify_url,omitempty"`
}

// Event is the canonical, post-normalization event record. Adapters produce
// these with scraped fields only; Slug, FirstSeen, LastSeen, and IsNew are
// owned by the pipeline and merge engine, never by adapters.
type Event struct {
	Slug      string            `json:"slug,omitempty"`
	Venue     string            `json:"venue"`
	Stage     string            `json:"stage,omitempty"`
	Date      string            `json:"date"`               // YYYY-MM-DD
	EndDate   string            `json:"end_date,omitempty"` // ranged shows keep their start as Date
	DoorsTime string            `json:"doors_time,omitempty"`
	ShowTime  string            `json:"show_time,omitempty"`
	Artists   []Artist          `json:"artists"`
	Price     string            `json:"price,omitempty"`
	TicketURL string            `json:"ticket_url"`
	InfoURL   string            `json:"info_url,omitempty"`
	ImageURL  string            `json:"image_url,omitempty"`
	Category  category.Category `json:"category"`
	FirstSeen time.Time         `json:"first_seen,omitzero"`
	LastSeen  time.Time         `json:"last_seen,omitzero"`
	IsNew     bool              `json:"is_new"`

	// Pre-normalization price fields from venues that list advance and
	// day-of-show prices separately. Consolidated by NormalizePrice.
	AdvPrice string `json:"-"`
	DosPrice string `json:"-"`
}

// Headliner returns the name of the first-billed artist, or "" when the
// artist list is empty.
func (e *Event) Headliner() string {
	if len(e.Artists) == 0 {
		return ""
	}
	return e.Artists[0].Name
}

// ParseDate returns the event date as a time.Time, or the zero time when
// Date is malformed.
func (e *Event) ParseDate() time.Time {
	t, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsPast reports whether the event date is strictly before the given day.
// Malformed dates report false so the caller doesn't silently drop them.
func (e *Event) IsPast(today time.Time) bool {
	d := e.ParseDate()
	if d.IsZero() {
		return false
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(day)
}

var (
	slugStripPattern    = regexp.MustCompile(`[^\w\s-]`)
	slugSpacePattern    = regexp.MustCompile(`[\s_]+`)
	slugCollapsePattern = regexp.MustCompile(`-+`)
)

// slugify lowercases text, strips special characters, and joins the rest
// with single hyphens. Identical input always yields identical output;
// this stability is what makes cross-run merging possible.
func slugify(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = slugStripPattern.ReplaceAllString(text, "")
	text = slugSpacePattern.ReplaceAllString(text, "-")
	text = slugCollapsePattern.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

// GenerateSlug derives the stable identity key for an event from its date,
// venue, stage (for multi-room venues), and headliner:
// YYYY-MM-DD-venue-name-stage-artist-name. Empty components are skipped.
func GenerateSlug(e *Event) string {
	headliner := e.Headliner()
	if headliner == "" {
		headliner = "unknown"
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{e.Date, slugify(e.Venue), slugify(e.Stage), slugify(headliner)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

// AssignSlugs generates slugs for a batch of events, appending -2, -3, ...
// to any collisions within the batch so slugs stay unique in a single run
// (e.g. two distinct shows by the same artist on the same day).
func AssignSlugs(events []*Event) {
	counts := make(map[string]int)
	for _, e := range events {
		base := GenerateSlug(e)
		counts[base]++
		if n := counts[base]; n > 1 {
			e.Slug = base + "-" + strconv.Itoa(n)
		} else {
			e.Slug = base
		}
	}
}
