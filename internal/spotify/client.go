package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTokenURL  = "https://accounts.spotify.com/api/token"
	defaultSearchURL = "https://api.spotify.com/v1/search"
	searchLimit      = 5
)

// Client is a Spotify Web API client using the client-credentials flow.
type Client struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	tokenURL     string
	searchURL    string

	token       string
	tokenExpiry time.Time

	// test seams
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a Spotify client. Credentials are exchanged for a
// token lazily on first use.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		tokenURL:  defaultTokenURL,
		searchURL: defaultSearchURL,
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// Artist is a Spotify artist record.
type Artist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Popularity int    `json:"popularity"`
	Genres     []string `json:"genres"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type searchResponse struct {
	Artists struct {
		Items []Artist `json:"items"`
	} `json:"artists"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// SearchArtists runs an artist search for the given name.
func (c *Client) SearchArtists(ctx context.Context, name string) ([]Artist, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("artist:%q", name))
	params.Set("type", "artist")
	params.Set("limit", strconv.Itoa(searchLimit))
	params.Set("market", "US")

	reqURL := c.searchURL + "?" + params.Encode()

	resp, err := c.authorizedGet(ctx, reqURL, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return result.Artists.Items, nil
}

// authorizedGet performs a bearer-authenticated GET, refreshing the token
// once on 401 and honoring Retry-After once on 429.
func (c *Client) authorizedGet(ctx context.Context, reqURL string, retry bool) (*http.Response, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify request: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp, nil
	case http.StatusUnauthorized:
		resp.Body.Close()
		if !retry {
			return nil, fmt.Errorf("spotify auth rejected after token refresh")
		}
		c.token = ""
		return c.authorizedGet(ctx, reqURL, false)
	case http.StatusTooManyRequests:
		wait := retryAfter(resp)
		resp.Body.Close()
		if !retry {
			return nil, fmt.Errorf("spotify rate limited twice")
		}
		c.sleep(wait)
		return c.authorizedGet(ctx, reqURL, false)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("spotify API status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	// refresh slightly early so in-flight requests never race expiry
	if c.token != "" && c.now().Before(c.tokenExpiry.Add(-60*time.Second)) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request status %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	c.token = tok.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.token, nil
}

func retryAfter(resp *http.Response) time.Duration {
	if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 2 * time.Second
}
