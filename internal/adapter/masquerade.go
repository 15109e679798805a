package adapter

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/atlgigs/gig-scraper/internal/category"
	"github.com/atlgigs/gig-scraper/internal/event"
)

const masqueradeBaseURL = "https://www.masqueradeatlanta.com/search-events/"

var masqueradeStages = map[string]bool{
	"Heaven":    true,
	"Hell":      true,
	"Purgatory": true,
	"Altar":     true,
}

var (
	supportSplit   = regexp.MustCompile(`,\s*|\s+&\s+|\s+and\s+`)
	bgImagePattern = regexp.MustCompile(`url\(['"]?([^'")]+)['"]?\)`)
)

// Masquerade scrapes The Masquerade's event search page. The club hosts
// shows on four named stages which become the event's stage field.
type Masquerade struct {
	client  *Client
	baseURL string
}

func NewMasquerade(client *Client) *Masquerade {
	return &Masquerade{client: client, baseURL: masqueradeBaseURL}
}

func (a *Masquerade) Name() string { return "The Masquerade" }

func (a *Masquerade) Fetch(ctx context.Context) ([]*event.Event, error) {
	doc, err := a.client.GetHTML(ctx, a.baseURL, nil)
	if err != nil {
		return nil, err
	}

	var events []*event.Event
	doc.Find("article.eventItem, article").Each(func(_ int, card *goquery.Selection) {
		if e := a.parseCard(card); e != nil {
			events = append(events, e)
		}
	})
	return events, nil
}

func (a *Masquerade) parseCard(card *goquery.Selection) *event.Event {
	headliner := strings.TrimSpace(card.Find("h2 a, h2").First().Text())
	if headliner == "" {
		return nil
	}

	// the search page also lists shows the club promotes at other
	// venues; only the four in-house stages belong to this feed
	stage := strings.TrimSpace(card.Find(".js-listVenue").First().Text())
	if stage != "" && !masqueradeStages[stage] {
		return nil
	}

	date, doors := parseMasqueradeStart(card)
	if date == "" {
		return nil
	}

	artists := []event.Artist{{Name: headliner}}
	support := strings.TrimSpace(card.Find(".eventSupport, .supporting").First().Text())
	support = strings.TrimPrefix(support, "with ")
	if support != "" {
		for _, name := range supportSplit.Split(support, -1) {
			if name = strings.TrimSpace(name); name != "" {
				artists = append(artists, event.Artist{Name: name})
			}
		}
	}

	ticketURL, _ := card.Find("a.btn-purple, a[itemprop='url']").First().Attr("href")
	if ticketURL == "" {
		return nil
	}
	ticketURL = absoluteURL(a.baseURL, ticketURL)

	imageURL := ""
	if style, ok := card.Find("[style*='background-image']").First().Attr("style"); ok {
		if m := bgImagePattern.FindStringSubmatch(style); m != nil {
			imageURL = absoluteURL(a.baseURL, m[1])
		}
	}

	cat := category.DetectFromText(headliner + " " + support)
	if cat == "" {
		cat = category.Default
	}

	return &event.Event{
		Venue:     a.Name(),
		Stage:     stage,
		Date:      date,
		DoorsTime: event.NormalizeTime(doors),
		Artists:   artists,
		TicketURL: ticketURL,
		ImageURL:  imageURL,
		Category:  cat,
	}
}

// parseMasqueradeStart reads the schema.org startDate meta, preferring the
// content attribute ("November 30, 2025 6:00 pm") and falling back to the
// visible span text.
func parseMasqueradeStart(card *goquery.Selection) (date, doors string) {
	sel := card.Find(".eventStartDate, [itemprop='startDate']").First()
	raw, ok := sel.Attr("content")
	if !ok || raw == "" {
		raw = strings.TrimSpace(sel.Text())
	}
	if raw == "" {
		return "", ""
	}

	for _, layout := range []string{"January 2, 2006 3:04 pm", "January 2, 2006 3:04 PM", "January 2, 2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			date = t.Format("2006-01-02")
			if strings.Contains(layout, "3:04") {
				doors = t.Format("3:04 PM")
			}
			return date, doors
		}
	}
	return "", ""
}
