package tm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const discoveryBaseURL = "https://app.ticketmaster.com/discovery/v2"

// Client is a client for the Ticketmaster Discovery API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Discovery API client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: discoveryBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Classification carries the segment/genre pair Ticketmaster attaches to
// events and attractions.
type Classification struct {
	Segment struct {
		Name string `json:"name"`
	} `json:"segment"`
	Genre struct {
		Name string `json:"name"`
	} `json:"genre"`
}

// VenueEvent is a single event from the Discovery events endpoint.
type VenueEvent struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
		End struct {
			LocalDate string `json:"localDate"`
		} `json:"end"`
		Status struct {
			Code string `json:"code"`
		} `json:"status"`
	} `json:"dates"`
	Images []Image `json:"images"`
	PriceRanges []struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"priceRanges"`
	Classifications []Classification `json:"classifications"`
	Embedded        struct {
		Attractions []Attraction `json:"attractions"`
	} `json:"_embedded"`
}

// Image is a Discovery API image asset.
type Image struct {
	URL    string `json:"url"`
	Ratio  string `json:"ratio"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Attraction is a performer record from the attractions endpoint.
type Attraction struct {
	Name            string           `json:"name"`
	Classifications []Classification `json:"classifications"`
	ExternalLinks   struct {
		Spotify []struct {
			URL string `json:"url"`
		} `json:"spotify"`
	} `json:"externalLinks"`
}

type eventsResponse struct {
	Embedded struct {
		Events []VenueEvent `json:"events"`
	} `json:"_embedded"`
}

type attractionsResponse struct {
	Embedded struct {
		Attractions []Attraction `json:"attractions"`
	} `json:"_embedded"`
}

// VenueEvents fetches all upcoming events for a Discovery venue ID.
func (c *Client) VenueEvents(ctx context.Context, venueID string) ([]VenueEvent, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("venueId", venueID)
	params.Set("size", "200")
	params.Set("sort", "date,asc")

	var resp eventsResponse
	if err := c.get(ctx, "/events.json", params, &resp); err != nil {
		return nil, err
	}
	return resp.Embedded.Events, nil
}

// FindAttraction looks up the best-matching attraction for a performer
// name. Returns nil when Ticketmaster knows no such attraction.
func (c *Client) FindAttraction(ctx context.Context, name string) (*Attraction, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("keyword", name)
	params.Set("size", "1")

	var resp attractionsResponse
	if err := c.get(ctx, "/attractions.json", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Embedded.Attractions) == 0 {
		return nil, nil
	}
	return &resp.Embedded.Attractions[0], nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, v interface{}) error {
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("discovery request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("discovery API status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding discovery response: %w", err)
	}
	return nil
}

// BestImage picks the widest 16:9 image of at least 600px, falling back
// to the first image available.
func BestImage(images []Image) string {
	best := ""
	bestWidth := 0
	for _, img := range images {
		if img.Ratio == "16_9" && img.Width >= 600 && img.Width > bestWidth {
			best = img.URL
			bestWidth = img.Width
		}
	}
	if best == "" && len(images) > 0 {
		best = images[0].URL
	}
	return best
}

// FormatPriceRange renders Discovery price ranges the way listings show
// them: "$25" for a flat price, "$25 - $75" for a spread.
func FormatPriceRange(min, max float64) string {
	if max > min {
		return fmt.Sprintf("$%s - $%s", formatAmount(min), formatAmount(max))
	}
	return "$" + formatAmount(min)
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
