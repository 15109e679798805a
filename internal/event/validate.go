package event

import (
	"fmt"

	"github.com/atlgigs/gig-scraper/internal/category"
)

// Validate enforces the invariants an event must satisfy before it may
// enter the merge stage: venue, well-formed date, a non-empty artist list
// with a named headliner, a ticket URL, and a valid category. The returned
// error names the first violated invariant; failing events are dropped by
// the pipeline, never fatal to the run.
func Validate(e *Event) error {
	if e.Venue == "" {
		return fmt.Errorf("missing venue")
	}
	if e.Date == "" {
		return fmt.Errorf("missing date")
	}
	if e.ParseDate().IsZero() {
		return fmt.Errorf("malformed date %q", e.Date)
	}
	if len(e.Artists) == 0 {
		return fmt.Errorf("empty artist list")
	}
	if e.Artists[0].Name == "" {
		return fmt.Errorf("unnamed headliner")
	}
	if e.TicketURL == "" {
		return fmt.Errorf("missing ticket_url")
	}
	if !category.Valid(e.Category) {
		return fmt.Errorf("invalid category %q", e.Category)
	}
	return nil
}
