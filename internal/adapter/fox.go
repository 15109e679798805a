package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/atlgigs/gig-scraper/internal/category"
	"github.com/atlgigs/gig-scraper/internal/event"
)

const (
	foxBaseURL = "https://www.foxtheatre.org"
	foxPerPage = 60
)

// Fox scrapes the Fox Theatre's AJAX event listing. The endpoint returns
// a JSON-encoded HTML fragment per page; per-card CSS classes carry the
// venue's own category assignment, and ranged runs (Broadway shows) keep
// their start date with the end recorded separately.
type Fox struct {
	client  *Client
	baseURL string
}

// NewFox creates the Fox Theatre adapter.
func NewFox(client *Client) *Fox {
	return &Fox{client: client, baseURL: foxBaseURL}
}

func (a *Fox) Name() string { return "Fox Theatre" }

// Fetch pages through the AJAX endpoint until a page renders no cards.
func (a *Fox) Fetch(ctx context.Context) ([]*event.Event, error) {
	headers := map[string]string{
		"X-Requested-With": "XMLHttpRequest",
		"Referer":          a.baseURL + "/events",
	}

	var events []*event.Event
	seen := make(map[string]bool)

	for offset := 0; ; {
		url := fmt.Sprintf(
			"%s/events/events_ajax/%d?category=0&venue=0&team=0&exclude=&per_page=%d&came_from_page=event-list-page",
			a.baseURL, offset, foxPerPage,
		)

		body, err := a.client.Get(ctx, url, headers)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", offset, err)
		}

		// The endpoint wraps the HTML fragment in a JSON string.
		html := string(body)
		var unwrapped string
		if err := json.Unmarshal(body, &unwrapped); err == nil {
			html = unwrapped
		}
		if !strings.Contains(html, `<div class="eventItem`) {
			break
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return nil, fmt.Errorf("offset %d: parsing HTML: %w", offset, err)
		}

		cards := doc.Find("div.eventItem")
		if cards.Length() == 0 {
			break
		}

		cards.Each(func(_ int, card *goquery.Selection) {
			if e := a.parseCard(card, seen); e != nil {
				events = append(events, e)
			}
		})

		if cards.Length() < foxPerPage {
			break
		}
		offset += cards.Length()
		a.client.Throttle()
	}

	return events, nil
}

func (a *Fox) parseCard(card *goquery.Selection, seen map[string]bool) *event.Event {
	title := strings.TrimSpace(card.Find("h3.title a").First().Text())
	if title == "" {
		title = strings.TrimSpace(card.Find("h3.title").First().Text())
	}
	if title == "" {
		return nil
	}

	detailLink := card.Find("h3.title a, a.more, a[href*='/events/detail/']").First()
	detailURL, _ := detailLink.Attr("href")
	if detailURL == "" {
		return nil
	}
	detailURL = absoluteURL(a.baseURL, detailURL)
	if seen[detailURL] {
		return nil
	}
	seen[detailURL] = true

	start, end := parseMDate(card.Find("div.date").First())
	if start == "" {
		return nil
	}
	endDate := ""
	if end != start {
		endDate = end
	}

	img := card.Find("div.thumb img, .thumb img, img").First()
	imageURL, ok := img.Attr("src")
	if !ok {
		imageURL, _ = img.Attr("data-src")
	}
	imageURL = absoluteURL(a.baseURL, imageURL)

	ticketURL, _ := card.Find("a.tickets, a[href*='evenue.net']").First().Attr("href")
	ticketURL = strings.TrimSpace(ticketURL)
	if ticketURL == "" {
		ticketURL = detailURL
	}

	cat := category.Misc
	if classes, ok := card.Attr("class"); ok {
		for _, cls := range strings.Fields(classes) {
			switch cls {
			case "broadway":
				cat = category.Broadway
			case "comedy":
				cat = category.Comedy
			case "concerts":
				cat = category.Concerts
			}
		}
	}

	return &event.Event{
		Venue:     a.Name(),
		Date:      start,
		EndDate:   endDate,
		Artists:   []event.Artist{{Name: title}},
		TicketURL: ticketURL,
		InfoURL:   detailURL,
		ImageURL:  imageURL,
		Category:  cat,
	}
}
