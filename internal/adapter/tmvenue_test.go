package adapter

import (
	"testing"

	"github.com/atlgigs/gig-scraper/internal/category"
	"github.com/atlgigs/gig-scraper/internal/tm"
)

func TestTMVenueTransform(t *testing.T) {
	a := NewTMMasquerade(tm.NewClient("test-key"), testClient())

	var row tm.VenueEvent
	row.Name = "Touche Amore"
	row.URL = "https://www.ticketmaster.com/touche-amore/event/0E0061"
	row.Dates.Start.LocalDate = "2025-11-30"
	row.Dates.Start.LocalTime = "19:00:00"
	row.Images = []tm.Image{
		{URL: "https://s1.ticketm.net/small.jpg", Ratio: "16_9", Width: 205},
		{URL: "https://s1.ticketm.net/large.jpg", Ratio: "16_9", Width: 1024},
		{URL: "https://s1.ticketm.net/portrait.jpg", Ratio: "3_2", Width: 640},
	}
	row.PriceRanges = []struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}{{Min: 25, Max: 29.50}}
	row.Classifications = []tm.Classification{{}}
	row.Classifications[0].Segment.Name = "Music"
	row.Classifications[0].Genre.Name = "Rock"
	headline := tm.Attraction{Name: "Touche Amore"}
	headline.Classifications = []tm.Classification{{}}
	headline.Classifications[0].Genre.Name = "Rock"
	headline.ExternalLinks.Spotify = []struct {
		URL string `json:"url"`
	}{{URL: "https://open.spotify.com/artist/7z8QY"}}
	row.Embedded.Attractions = []tm.Attraction{
		headline,
		{Name: "Soul Glo"},
	}

	e := a.transform(row, "Hell")
	if e == nil {
		t.Fatal("expected an event")
	}
	if e.Venue != "The Masquerade" || e.Stage != "Hell" {
		t.Errorf("venue/stage = %q/%q", e.Venue, e.Stage)
	}
	if e.ShowTime != "19:00" {
		t.Errorf("show time = %q", e.ShowTime)
	}
	if len(e.Artists) != 2 || e.Artists[1].Name != "Soul Glo" {
		t.Errorf("unexpected artists: %+v", e.Artists)
	}
	if e.Artists[0].Genre != "Rock" {
		t.Errorf("attraction genre not carried: %+v", e.Artists[0])
	}
	if e.Artists[0].SpotifyURL != "https://open.spotify.com/artist/7z8QY" {
		t.Errorf("attraction spotify link not carried: %+v", e.Artists[0])
	}
	if e.Artists[1].Genre != "" || e.Artists[1].SpotifyURL != "" {
		t.Errorf("support without attraction data must stay bare: %+v", e.Artists[1])
	}
	if e.Price != "$25 - $29.50" {
		t.Errorf("price = %q", e.Price)
	}
	if e.ImageURL != "https://s1.ticketm.net/large.jpg" {
		t.Errorf("expected the widest 16:9 image, got %q", e.ImageURL)
	}
	if e.Category != category.Concerts {
		t.Errorf("category = %q", e.Category)
	}
}

func TestTMVenueTransformSkips(t *testing.T) {
	a := NewTMStateFarm(tm.NewClient("test-key"), testClient())

	t.Run("cancelled", func(t *testing.T) {
		var row tm.VenueEvent
		row.Name = "Cancelled Show"
		row.URL = "https://www.ticketmaster.com/x/event/1"
		row.Dates.Start.LocalDate = "2026-01-01"
		row.Dates.Status.Code = "cancelled"
		if e := a.transform(row, ""); e != nil {
			t.Error("cancelled events should be skipped")
		}
	})

	t.Run("no date", func(t *testing.T) {
		var row tm.VenueEvent
		row.Name = "Dateless Show"
		row.URL = "https://www.ticketmaster.com/x/event/2"
		if e := a.transform(row, ""); e != nil {
			t.Error("dateless events should be skipped")
		}
	})

	t.Run("ranged run", func(t *testing.T) {
		var row tm.VenueEvent
		row.Name = "Multi Day"
		row.URL = "https://www.ticketmaster.com/x/event/3"
		row.Dates.Start.LocalDate = "2026-05-01"
		row.Dates.End.LocalDate = "2026-05-03"
		e := a.transform(row, "")
		if e == nil {
			t.Fatal("expected an event")
		}
		if e.Date != "2026-05-01" || e.EndDate != "2026-05-03" {
			t.Errorf("run = %s..%s", e.Date, e.EndDate)
		}
	})
}
