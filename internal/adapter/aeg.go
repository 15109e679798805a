package adapter

import (
	"context"
	"strings"
	"time"

	"github.com/atlgigs/gig-scraper/internal/category"
	"github.com/atlgigs/gig-scraper/internal/event"
)

// AEG venues publish their full calendars as a single JSON blob per venue.
const (
	terminalWestURL     = "https://aegwebprod.blob.core.windows.net/json/events/211/events.json"
	theEasternURL       = "https://aegwebprod.blob.core.windows.net/json/events/127/events.json"
	varietyPlayhouseURL = "https://aegwebprod.blob.core.windows.net/json/events/214/events.json"
)

// AEG scrapes one AEG-operated venue's JSON feed.
type AEG struct {
	client *Client
	name   string
	url    string
}

// NewTerminalWest creates the Terminal West adapter.
func NewTerminalWest(client *Client) *AEG {
	return &AEG{client: client, name: "Terminal West", url: terminalWestURL}
}

// NewTheEastern creates The Eastern adapter.
func NewTheEastern(client *Client) *AEG {
	return &AEG{client: client, name: "The Eastern", url: theEasternURL}
}

// NewVarietyPlayhouse creates the Variety Playhouse adapter.
func NewVarietyPlayhouse(client *Client) *AEG {
	return &AEG{client: client, name: "Variety Playhouse", url: varietyPlayhouseURL}
}

func (a *AEG) Name() string { return a.name }

type aegFeed struct {
	Events []aegEvent `json:"events"`
}

type aegEvent struct {
	EventDateTime string `json:"eventDateTime"`
	DoorDateTime  string `json:"doorDateTime"`
	Title         struct {
		HeadlinersText string `json:"headlinersText"`
		SupportingText string `json:"supportingText"`
	} `json:"title"`
	TicketPriceLow  string `json:"ticketPriceLow"`
	TicketPriceHigh string `json:"ticketPriceHigh"`
	Ticketing       struct {
		URL string `json:"url"`
	} `json:"ticketing"`
	Media map[string]struct {
		FileName string `json:"file_name"`
		Width    int    `json:"width"`
	} `json:"media"`
}

// Fetch downloads and maps the venue's JSON feed. Events with TBD dates
// are skipped.
func (a *AEG) Fetch(ctx context.Context) ([]*event.Event, error) {
	var feed aegFeed
	headers := map[string]string{"Accept": "application/json"}
	if err := a.client.GetJSON(ctx, a.url, headers, &feed); err != nil {
		return nil, err
	}

	var events []*event.Event
	for _, raw := range feed.Events {
		if raw.EventDateTime == "" || strings.Contains(raw.EventDateTime, "TBD") {
			continue
		}
		showDT, err := time.Parse(time.RFC3339, raw.EventDateTime)
		if err != nil {
			// some feeds omit the zone suffix
			showDT, err = time.Parse("2006-01-02T15:04:05", raw.EventDateTime)
			if err != nil {
				continue
			}
		}

		var artists []event.Artist
		if raw.Title.HeadlinersText != "" {
			artists = append(artists, event.Artist{Name: raw.Title.HeadlinersText})
		}
		if raw.Title.SupportingText != "" {
			artists = append(artists, event.Artist{Name: raw.Title.SupportingText})
		}

		price := raw.TicketPriceLow
		if raw.TicketPriceHigh != "" && raw.TicketPriceHigh != raw.TicketPriceLow {
			price = raw.TicketPriceLow + " - " + raw.TicketPriceHigh
		}

		doors := ""
		if raw.DoorDateTime != "" {
			if i := strings.Index(raw.DoorDateTime, "T"); i >= 0 && len(raw.DoorDateTime) >= i+6 {
				doors = raw.DoorDateTime[i+1 : i+6]
			}
		}

		var imageURL string
		for _, img := range raw.Media {
			if img.Width == 678 {
				imageURL = img.FileName
				break
			}
		}

		events = append(events, &event.Event{
			Venue:     a.name,
			Date:      showDT.Format("2006-01-02"),
			DoorsTime: event.NormalizeTime(doors),
			ShowTime:  showDT.Format("15:04"),
			Artists:   artists,
			Price:     price,
			TicketURL: raw.Ticketing.URL,
			ImageURL:  imageURL,
			Category:  category.Default,
		})
	}

	return events, nil
}
