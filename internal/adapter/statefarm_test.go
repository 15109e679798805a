package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/atlgigs/gig-scraper/internal/category"
	"github.com/atlgigs/gig-scraper/internal/event"
)

func TestStateFarmFetch(t *testing.T) {
	concerts, err := os.ReadFile("../../testdata/fixtures/statefarm_concerts.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	other, err := os.ReadFile("../../testdata/fixtures/statefarm_other.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/events/category/concerts":
			w.Write(concerts)
		case "/events/category/other":
			w.Write(other)
		default:
			w.Write([]byte("<html><body></body></html>"))
		}
	}))
	defer srv.Close()

	a := NewStateFarm(testClient())
	a.baseURL = srv.URL

	events, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	// Olivia Dean appears on both the concerts and other pages
	if len(events) != 3 {
		t.Fatalf("expected 3 deduplicated events, got %d", len(events))
	}

	byName := make(map[string]*event.Event)
	for _, e := range events {
		byName[e.Headliner()] = e
	}

	dean := byName["Olivia Dean"]
	if dean == nil {
		t.Fatal("Olivia Dean missing")
	}
	if dean.Category != category.Concerts {
		t.Errorf("duplicate should keep the higher-priority category, got %q", dean.Category)
	}
	if dean.ShowTime != "19:30" {
		t.Errorf("show time = %q, expected 19:30", dean.ShowTime)
	}
	if dean.Date != "2026-04-18" {
		t.Errorf("date = %q, expected 2026-04-18", dean.Date)
	}

	disney := byName["Disney On Ice"]
	if disney == nil {
		t.Fatal("Disney On Ice missing")
	}
	if disney.Date != "2026-05-01" || disney.EndDate != "2026-05-02" {
		t.Errorf("run = %s..%s, expected 2026-05-01..2026-05-02", disney.Date, disney.EndDate)
	}

	globetrotters := byName["Harlem Globetrotters"]
	if globetrotters == nil {
		t.Fatal("Harlem Globetrotters missing")
	}
	if globetrotters.Category != category.Misc {
		t.Errorf("no-keyword title should stay misc, got %q", globetrotters.Category)
	}
}

func TestStateFarmAllPagesFailing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusNotFound)
	}))
	defer srv.Close()

	a := NewStateFarm(testClient())
	a.baseURL = srv.URL

	if _, err := a.Fetch(context.Background()); err == nil {
		t.Fatal("expected error when every category page fails")
	}
}
