package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/atlgigs/gig-scraper/internal/category"
)

func TestFoxFetch(t *testing.T) {
	fragment, err := os.ReadFile("../../testdata/fixtures/fox_events.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Requested-With") != "XMLHttpRequest" {
			t.Errorf("missing XMLHttpRequest header")
		}
		if strings.Contains(r.URL.Path, "/events_ajax/0") {
			json.NewEncoder(w).Encode(string(fragment))
			return
		}
		json.NewEncoder(w).Encode("")
	}))
	defer srv.Close()

	a := NewFox(testClient())
	a.baseURL = srv.URL

	events, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	// third card repeats the second card's detail URL
	if len(events) != 2 {
		t.Fatalf("expected 2 events after dedup, got %d", len(events))
	}

	wicked := events[0]
	if wicked.Headliner() != "Wicked" {
		t.Errorf("headliner = %q", wicked.Headliner())
	}
	if wicked.Date != "2026-02-03" || wicked.EndDate != "2026-02-08" {
		t.Errorf("run = %s..%s, expected 2026-02-03..2026-02-08", wicked.Date, wicked.EndDate)
	}
	if wicked.Category != category.Broadway {
		t.Errorf("category = %q, expected broadway", wicked.Category)
	}
	if wicked.TicketURL != "https://fabulousfox.evenue.net/list/wicked" {
		t.Errorf("unexpected ticket URL: %q", wicked.TicketURL)
	}
	if wicked.InfoURL != srv.URL+"/events/detail/wicked-2026" {
		t.Errorf("unexpected info URL: %q", wicked.InfoURL)
	}

	welch := events[1]
	if welch.Date != "2026-03-14" || welch.EndDate != "" {
		t.Errorf("single date run = %s..%s", welch.Date, welch.EndDate)
	}
	if welch.Category != category.Concerts {
		t.Errorf("category = %q, expected concerts", welch.Category)
	}
	if welch.ImageURL != srv.URL+"/assets/img/welch.jpg" {
		t.Errorf("data-src image not picked up: %q", welch.ImageURL)
	}
}
