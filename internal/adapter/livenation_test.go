package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlgigs/gig-scraper/internal/category"
)

func TestLiveNationFetch(t *testing.T) {
	pages := map[float64]string{
		0: `{"data": {"getEvents": [
			{
				"name": "Turnstile - Never Enough Tour",
				"event_date": "2026-04-02",
				"event_time": "19:00:00",
				"event_end_time": "20:00:00",
				"url": "https://www.ticketmaster.com/turnstile-tabernacle/event/0E006155",
				"artists": [
					{"name": "Turnstile", "genre": "Hardcore"},
					{"name": "Mannequin Pussy", "genre": "Punk"}
				],
				"images": [{"image_url": "https://images.livenation.com/turnstile.jpg"}]
			},
			{
				"name": "Anthony Jeselnik",
				"event_date": "2026-04-10",
				"event_time": "20:00:00",
				"url": "https://www.ticketmaster.com/jeselnik-tabernacle/event/0E006200",
				"artists": [{"name": "Anthony Jeselnik", "genre": "Comedy"}],
				"images": []
			}
		]}}`,
		36: `{"data": {"getEvents": []}}`,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q", got)
		}
		var req struct {
			Variables struct {
				Offset  float64 `json:"offset"`
				VenueID string  `json:"venue_id"`
			} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Variables.VenueID != "KovZpaFEZe" {
			t.Errorf("venue_id = %q", req.Variables.VenueID)
		}
		body, ok := pages[req.Variables.Offset]
		if !ok {
			t.Fatalf("unexpected offset %v", req.Variables.Offset)
		}
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	a := NewTabernacle(testClient(), "test-key")
	a.apiURL = srv.URL

	events, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	turnstile := events[0]
	if turnstile.Venue != "Tabernacle" {
		t.Errorf("venue = %q", turnstile.Venue)
	}
	if turnstile.DoorsTime != "19:00" || turnstile.ShowTime != "20:00" {
		t.Errorf("times = %q/%q", turnstile.DoorsTime, turnstile.ShowTime)
	}
	if len(turnstile.Artists) != 2 || turnstile.Artists[0].Genre != "Hardcore" {
		t.Errorf("unexpected artists: %+v", turnstile.Artists)
	}
	if turnstile.Category != category.Concerts {
		t.Errorf("category = %q, expected concerts", turnstile.Category)
	}

	jeselnik := events[1]
	if jeselnik.Category != category.Comedy {
		t.Errorf("comedy genre should map to comedy, got %q", jeselnik.Category)
	}
}
