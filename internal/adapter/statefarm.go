package adapter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/atlgigs/gig-scraper/internal/category"
	"github.com/atlgigs/gig-scraper/internal/event"
)

const (
	stateFarmBaseURL  = "https://www.statefarmarena.com"
	stateFarmMaxPages = 10
)

// The arena partitions its calendar into category pages; the same event
// can appear on several. Lower priority wins when pages disagree.
var stateFarmCategoryPages = []struct {
	path string
	cat  category.Category
}{
	{"/events/category/concerts", category.Concerts},
	{"/events/category/family-shows", category.Misc},
	{"/events/category/hawks", category.Sports},
	{"/events/category/other", category.Misc},
}

var stateFarmPriority = map[category.Category]int{
	category.Concerts: 0,
	category.Comedy:   1,
	category.Broadway: 2,
	category.Sports:   3,
	category.Misc:     4,
}

var timePattern = regexp.MustCompile(`(?i)(\d{1,2}:\d{2})\s*(AM|PM)`)

// StateFarm scrapes State Farm Arena's category-partitioned HTML listing,
// deduplicating cross-page events by detail URL.
type StateFarm struct {
	client  *Client
	baseURL string
}

// NewStateFarm creates the State Farm Arena HTML adapter. When a
// Ticketmaster API key is configured the registry swaps in the Discovery
// adapter instead.
func NewStateFarm(client *Client) *StateFarm {
	return &StateFarm{client: client, baseURL: stateFarmBaseURL}
}

func (a *StateFarm) Name() string { return "State Farm Arena" }

type stateFarmCard struct {
	event *event.Event
	key   string
}

// Fetch walks each category page (following load-more pagination up to a
// page cap), resolving duplicates by category priority.
func (a *StateFarm) Fetch(ctx context.Context) ([]*event.Event, error) {
	byKey := make(map[string]*event.Event)
	var order []string
	var pageErrs []string

	for _, page := range stateFarmCategoryPages {
		url := a.baseURL + page.path

		for pages := 0; url != "" && pages < stateFarmMaxPages; pages++ {
			cards, nextURL, err := a.scrapePage(ctx, url, page.cat)
			if err != nil {
				pageErrs = append(pageErrs, fmt.Sprintf("%s: %v", page.path, err))
				break
			}

			for _, c := range cards {
				if existing, ok := byKey[c.key]; ok {
					if stateFarmPriority[page.cat] < stateFarmPriority[existing.Category] {
						existing.Category = page.cat
					}
					continue
				}
				byKey[c.key] = c.event
				order = append(order, c.key)
			}

			url = nextURL
			if url != "" {
				a.client.Throttle()
			}
		}
	}

	// every category page failing means the venue is down
	if len(byKey) == 0 && len(pageErrs) > 0 {
		return nil, fmt.Errorf("all category pages failed: %s", strings.Join(pageErrs, "; "))
	}

	events := make([]*event.Event, 0, len(order))
	for _, key := range order {
		events = append(events, byKey[key])
	}
	return events, nil
}

func (a *StateFarm) scrapePage(ctx context.Context, url string, pageCat category.Category) ([]stateFarmCard, string, error) {
	doc, err := a.client.GetHTML(ctx, url, nil)
	if err != nil {
		return nil, "", err
	}

	var cards []stateFarmCard
	doc.Find(".eventItem").Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find(".title a").First().Text())
		if title == "" {
			title = strings.TrimSpace(card.Find(".title").First().Text())
		}
		if title == "" {
			return
		}

		detailURL, _ := card.Find("a.more, a[href*='/events/detail/']").First().Attr("href")
		detailURL = absoluteURL(a.baseURL, detailURL)

		ticketURL, _ := card.Find("a.tickets, a[href*='ticketmaster']").First().Attr("href")
		if ticketURL == "" {
			ticketURL = detailURL
		}
		if ticketURL == "" {
			return
		}

		start, end := parseMDate(card.Find(".date").First())
		if start == "" {
			return
		}
		endDate := ""
		if end != start {
			endDate = end
		}

		showTime := ""
		if m := timePattern.FindStringSubmatch(card.Find(".meta .time").First().Text()); m != nil {
			showTime = event.NormalizeTime(m[1] + m[2])
		}

		img := card.Find(".thumb img, img").First()
		imageURL, ok := img.Attr("src")
		if !ok {
			imageURL, _ = img.Attr("data-src")
		}
		imageURL = absoluteURL(a.baseURL, imageURL)

		cat := pageCat
		if cat == category.Misc {
			if detected := category.DetectFromText(title); detected != "" {
				cat = detected
			} else if detected := category.DetectFromTicketURL(ticketURL); detected != "" {
				cat = detected
			}
		}

		key := detailURL
		if key == "" {
			key = ticketURL
		}

		cards = append(cards, stateFarmCard{
			key: key,
			event: &event.Event{
				Venue:     a.Name(),
				Date:      start,
				EndDate:   endDate,
				ShowTime:  showTime,
				Artists:   []event.Artist{{Name: title}},
				TicketURL: ticketURL,
				InfoURL:   detailURL,
				ImageURL:  imageURL,
				Category:  cat,
			},
		})
	})

	nextURL := ""
	if href, ok := doc.Find("a.loadMore, a[href*='/events/index/']").First().Attr("href"); ok {
		nextURL = absoluteURL(a.baseURL, href)
	}

	return cards, nextURL, nil
}
