package event

import (
	"sort"
	"time"
)

// Merge combines a freshly scraped batch with the previous run's dataset.
//
// The join key is the slug. For a slug present in both sets the incoming
// record wins every scraped field but inherits first_seen from the previous
// record, and last_seen is set to now. Slugs only in incoming are new:
// first_seen = last_seen = now. Slugs only in previous are retained
// untouched. Their last_seen stays stale so the display layer can infer
// removal or cancellation; the pipeline never deletes records outright.
//
// is_new is recomputed for every record on every run: true iff
// now - first_seen <= freshness. The result is sorted ascending by date,
// ties broken by slug, so downstream artifacts are deterministic and
// diffable.
//
// Merge is idempotent for a fixed now: re-merging the same incoming batch
// changes nothing.
func Merge(previous, incoming []*Event, now time.Time, freshness time.Duration) []*Event {
	bySlug := make(map[string]*Event, len(previous)+len(incoming))
	order := make([]string, 0, len(previous)+len(incoming))

	for _, e := range previous {
		if e.Slug == "" {
			continue
		}
		if _, seen := bySlug[e.Slug]; !seen {
			order = append(order, e.Slug)
		}
		bySlug[e.Slug] = e
	}

	for _, e := range incoming {
		if e.Slug == "" {
			continue
		}
		if prev, ok := bySlug[e.Slug]; ok {
			if !prev.FirstSeen.IsZero() {
				e.FirstSeen = prev.FirstSeen
			}
		} else {
			order = append(order, e.Slug)
		}
		if e.FirstSeen.IsZero() {
			e.FirstSeen = now
		}
		e.LastSeen = now
		bySlug[e.Slug] = e
	}

	merged := make([]*Event, 0, len(order))
	for _, slug := range order {
		e := bySlug[slug]
		e.IsNew = !e.FirstSeen.IsZero() && now.Sub(e.FirstSeen) <= freshness
		merged = append(merged, e)
	}

	SortByDate(merged)
	return merged
}

// SortByDate orders events ascending by date, ties broken by slug.
func SortByDate(events []*Event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Slug < events[j].Slug
	})
}

// Stale reports whether an event has not been re-scraped for longer than
// the staleness threshold. Stale upcoming events are presumed cancelled or
// removed by the source; suppressing them is the display layer's call, so
// this is exposed as a predicate rather than applied as a filter.
func Stale(e *Event, now time.Time, threshold time.Duration) bool {
	if e.LastSeen.IsZero() {
		return false
	}
	return now.Sub(e.LastSeen) > threshold
}
