package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/atlgigs/gig-scraper/internal/category"
	"github.com/atlgigs/gig-scraper/internal/event"
)

const earlBaseURL = "https://badearl.com/show-calendar/"

// Earl scrapes The Earl's server-rendered show calendar. Pages are walked
// via ?sf_paged=N until the site renders its "No results found." sentinel.
type Earl struct {
	client  *Client
	baseURL string
}

// NewEarl creates The Earl adapter.
func NewEarl(client *Client) *Earl {
	return &Earl{client: client, baseURL: earlBaseURL}
}

func (a *Earl) Name() string { return "The Earl" }

// Fetch walks every calendar page and extracts the show cards.
func (a *Earl) Fetch(ctx context.Context) ([]*event.Event, error) {
	var events []*event.Event

	for page := 1; ; page++ {
		url := a.baseURL
		if page > 1 {
			url = fmt.Sprintf("%s?sf_paged=%d", a.baseURL, page)
		}

		body, err := a.client.Get(ctx, url, nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		if strings.Contains(string(body), "No results found.") {
			break
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
		if err != nil {
			return nil, fmt.Errorf("page %d: parsing HTML: %w", page, err)
		}

		pageEvents := a.parsePage(doc)
		if len(pageEvents) == 0 {
			break
		}
		events = append(events, pageEvents...)

		a.client.Throttle()
	}

	return events, nil
}

func (a *Earl) parsePage(doc *goquery.Document) []*event.Event {
	var events []*event.Event

	doc.Find("div.cl-layout__item").Each(func(_ int, card *goquery.Selection) {
		dateText := strings.TrimSpace(card.Find("p.show-listing-date").First().Text())
		if dateText == "" {
			return
		}
		// "Friday, Jan. 23, 2026"
		date, err := time.Parse("Monday, Jan. 2, 2006", dateText)
		if err != nil {
			return
		}

		var times []string
		card.Find("p.show-listing-time").Each(func(_ int, t *goquery.Selection) {
			times = append(times, strings.TrimSpace(t.Text()))
		})
		doors, show := "", ""
		if len(times) > 0 {
			doors = firstField(times[0])
		}
		if len(times) > 1 {
			show = firstField(times[1])
		}

		var adv, dos string
		card.Find("p.show-listing-price").Each(func(_ int, p *goquery.Selection) {
			price := strings.TrimSpace(p.Text())
			switch {
			case strings.Contains(price, "ADV"):
				adv = price
			case strings.Contains(price, "DOS"):
				dos = price
			}
		})

		var artists []event.Artist
		card.Find("div.show-listing-headliner").Each(func(_ int, h *goquery.Selection) {
			if name := strings.TrimSpace(h.Text()); name != "" {
				artists = append(artists, event.Artist{Name: name})
			}
		})
		card.Find("div.show-listing-support").Each(func(_ int, s *goquery.Selection) {
			if name := strings.TrimSpace(s.Text()); name != "" {
				artists = append(artists, event.Artist{Name: name})
			}
		})

		var ticketURL, infoURL string
		card.Find("a").Each(func(_ int, link *goquery.Selection) {
			href, ok := link.Attr("href")
			if !ok {
				return
			}
			switch strings.TrimSpace(link.Text()) {
			case "TIX":
				ticketURL = href
			case "More Info":
				infoURL = href
			}
		})

		imageURL, _ := card.Find("div.cl-element-featured_media img").First().Attr("src")

		events = append(events, &event.Event{
			Venue:     a.Name(),
			Date:      date.Format("2006-01-02"),
			DoorsTime: event.NormalizeTime(doors),
			ShowTime:  event.NormalizeTime(show),
			Artists:   artists,
			AdvPrice:  adv,
			DosPrice:  dos,
			TicketURL: ticketURL,
			InfoURL:   infoURL,
			ImageURL:  imageURL,
			Category:  category.Default,
		})
	})

	return events
}

// firstField returns the first whitespace-delimited token, or "" for
// blank text. Time paragraphs render empty on TBA shows.
func firstField(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
