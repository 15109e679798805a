package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func testClient() *Client {
	return NewClient(0).WithSleep(func(time.Duration) {})
}

func TestEarlFetch(t *testing.T) {
	page, err := os.ReadFile("../../testdata/fixtures/earl_shows.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("sf_paged") == "" {
			w.Write(page)
			return
		}
		w.Write([]byte("<html><body><p>No results found.</p></body></html>"))
	}))
	defer srv.Close()

	a := NewEarl(testClient())
	a.baseURL = srv.URL + "/"

	events, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	first := events[0]
	if first.Date != "2026-01-23" {
		t.Errorf("date = %q, expected 2026-01-23", first.Date)
	}
	if first.DoorsTime != "19:00" || first.ShowTime != "20:00" {
		t.Errorf("times = %q/%q, expected 19:00/20:00", first.DoorsTime, first.ShowTime)
	}
	if len(first.Artists) != 2 || first.Artists[0].Name != "Pylon Reenactment Society" || first.Artists[1].Name != "Smokedog" {
		t.Errorf("unexpected artists: %+v", first.Artists)
	}
	if first.TicketURL != "https://www.freshtix.com/events/pylon-reenactment-society" {
		t.Errorf("unexpected ticket URL: %q", first.TicketURL)
	}
	if first.InfoURL != "https://badearl.com/event/pylon-reenactment-society/" {
		t.Errorf("unexpected info URL: %q", first.InfoURL)
	}

	first.NormalizePrice()
	if first.Price != "$15 ADV / $18 DOS" {
		t.Errorf("price = %q, expected consolidated ADV/DOS", first.Price)
	}

	second := events[1]
	if second.Date != "2026-01-24" {
		t.Errorf("date = %q, expected 2026-01-24", second.Date)
	}
	if second.ShowTime != "" {
		t.Errorf("show time = %q, expected empty", second.ShowTime)
	}
	second.NormalizePrice()
	if second.Price != "$12 ADV" {
		t.Errorf("price = %q, expected $12 ADV", second.Price)
	}

	// blank time paragraphs (TBA shows) must parse, not crash
	third := events[2]
	if third.Headliner() != "Lambchop" {
		t.Errorf("headliner = %q, expected Lambchop", third.Headliner())
	}
	if third.DoorsTime != "" || third.ShowTime != "" {
		t.Errorf("times = %q/%q, expected empty", third.DoorsTime, third.ShowTime)
	}
}
