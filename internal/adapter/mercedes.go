package adapter

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/atlgigs/gig-scraper/internal/category"
	"github.com/atlgigs/gig-scraper/internal/event"
)

const mercedesBaseURL = "https://www.mercedesbenzstadium.com"

// Stadium cards carry their own event-type label; home games for the
// resident teams render through separate schedule widgets instead.
var mercedesTypeMap = map[string]category.Category{
	"sports":              category.Sports,
	"concert":             category.Concerts,
	"concerts":            category.Concerts,
	"other":               category.Misc,
	"conference":          category.Misc,
	"home depot backyard": category.Misc,
}

// Mercedes scrapes the Mercedes-Benz Stadium events listing, including the
// Falcons and Atlanta United schedule widgets.
type Mercedes struct {
	client  *Client
	baseURL string
}

func NewMercedes(client *Client) *Mercedes {
	return &Mercedes{client: client, baseURL: mercedesBaseURL}
}

func (a *Mercedes) Name() string { return "Mercedes-Benz Stadium" }

func (a *Mercedes) Fetch(ctx context.Context) ([]*event.Event, error) {
	doc, err := a.client.GetHTML(ctx, a.baseURL+"/events", nil)
	if err != nil {
		return nil, err
	}

	var events []*event.Event
	doc.Find(".event-card, [class*='event-card']").Each(func(_ int, card *goquery.Selection) {
		if e := a.parseCard(card); e != nil {
			events = append(events, e)
		}
	})

	doc.Find(".schedule-widget .game, [class*='schedule'] [class*='game']").Each(func(_ int, game *goquery.Selection) {
		if e := a.parseGame(game); e != nil {
			events = append(events, e)
		}
	})

	return events, nil
}

func (a *Mercedes) parseCard(card *goquery.Selection) *event.Event {
	title := strings.TrimSpace(card.Find("h3, .event-card__title").First().Text())
	if title == "" {
		return nil
	}

	start, end := parseMDate(card.Find(".m-date, .event-card__date").First())
	if start == "" {
		return nil
	}
	endDate := ""
	if end != start {
		endDate = end
	}

	ticketURL, _ := card.Find("a[href*='ticketmaster'], a.event-card__tickets").First().Attr("href")
	infoURL, _ := card.Find("a.event-card__link, a[href*='/event/']").First().Attr("href")
	infoURL = absoluteURL(a.baseURL, infoURL)
	if ticketURL == "" {
		ticketURL = infoURL
	}
	if ticketURL == "" {
		return nil
	}

	img := card.Find("img").First()
	imageURL, ok := img.Attr("src")
	if !ok {
		imageURL, _ = img.Attr("data-src")
	}

	label := strings.ToLower(strings.TrimSpace(card.Find(".event-card__type, .event-type").First().Text()))
	cat, ok := mercedesTypeMap[label]
	if !ok {
		cat = category.DetectFromText(title)
		if cat == "" {
			cat = category.Misc
		}
	}

	return &event.Event{
		Venue:     a.Name(),
		Date:      start,
		EndDate:   endDate,
		Artists:   []event.Artist{{Name: title}},
		TicketURL: ticketURL,
		InfoURL:   infoURL,
		ImageURL:  absoluteURL(a.baseURL, imageURL),
		Category:  cat,
	}
}

func (a *Mercedes) parseGame(game *goquery.Selection) *event.Event {
	opponent := strings.TrimSpace(game.Find(".opponent, .game__opponent").First().Text())
	team := strings.TrimSpace(game.Find(".team, .game__team").First().Text())
	if opponent == "" && team == "" {
		return nil
	}

	title := team
	if opponent != "" {
		if title == "" {
			title = opponent
		} else {
			title = title + " vs " + opponent
		}
	}

	start, _ := parseMDate(game.Find(".m-date, .game__date").First())
	if start == "" {
		return nil
	}

	ticketURL, _ := game.Find("a[href*='ticketmaster'], a.tickets").First().Attr("href")
	if ticketURL == "" {
		return nil
	}

	return &event.Event{
		Venue:     a.Name(),
		Date:      start,
		Artists:   []event.Artist{{Name: title}},
		TicketURL: ticketURL,
		Category:  category.Sports,
	}
}
