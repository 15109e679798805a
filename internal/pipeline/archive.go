package pipeline

import (
	"fmt"

	"github.com/atlgigs/gig-scraper/internal/event"
)

// PartitionPast splits events into the live set and month-keyed archive
// buckets ("2026-08") of events whose dates have passed.
func PartitionPast(events []*event.Event, today string) (live []*event.Event, archives map[string][]*event.Event) {
	archives = make(map[string][]*event.Event)

	for _, e := range events {
		if e.Date < today {
			month := e.Date
			if len(month) >= 7 {
				month = month[:7]
			}
			archives[month] = append(archives[month], e)
			continue
		}
		live = append(live, e)
	}
	return live, archives
}

// ArchiveFileName is the artifact name for a month's archive.
func ArchiveFileName(month string) string {
	return fmt.Sprintf("events-%s.json", month)
}
