package xcontest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"xcfeed/internal/domain"
)

const (
	SourceID = "xcontest"

	profileUserAgent = "Mozilla/5.0"
	apiUserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"

	pageSize = 250
)

var pilotIDPattern = regexp.MustCompile(`item\s*:\s*(\d+)`)

// Config holds XContest client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Year    int
}

// Client scrapes pilot profiles and queries the flights API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	year       int
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		year:    cfg.Year,
		logger:  logger.With("source", SourceID),
	}
}

// ResolvePilotID looks up the numeric pilot id behind a username on the public profile page.
func (c *Client) ResolvePilotID(ctx context.Context, username string) (uint64, error) {
	u := fmt.Sprintf("%s/world/en/pilots/detail:%s", c.baseURL, url.PathEscape(username))

	body, err := c.get(ctx, u, map[string]string{
		"Accept-Language": "en-US,en;q=0.9",
		"User-Agent":      profileUserAgent,
	})
	if err != nil {
		return 0, err
	}

	m := pilotIDPattern.FindSubmatch(body)
	if m == nil {
		return 0, domain.ErrUsernameNotFound
	}

	id, err := strconv.ParseUint(string(m[1]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: pilot id %q: %v", domain.ErrMissingField, m[1], err)
	}

	c.logger.Debug("resolved pilot id", "user", username, "pilot_id", id)

	return id, nil
}

// FetchFlights returns the most recent flights of a pilot in server order.
func (c *Client) FetchFlights(ctx context.Context, pilotID uint64, key string) ([]domain.Flight, error) {
	u := fmt.Sprintf(
		"%s/api/data/?flights/world/%d&lng=en&key=%s&list[start]=0&list[num]=%d&list[sort]=time_claim&list[dir]=down&filter[pilot]=%d",
		c.baseURL, c.year, url.QueryEscape(key), pageSize, pilotID,
	)

	body, err := c.get(ctx, u, map[string]string{
		"Accept-Language": "en-US,en",
		"Accept":          "application/json",
		"User-Agent":      apiUserAgent,
	})
	if err != nil {
		return nil, err
	}

	flights, err := parseFlights(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched flights", "pilot_id", pilotID, "count", len(flights))

	return flights, nil
}

func (c *Client) get(ctx context.Context, u string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status: %d", domain.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrNetwork, err)
	}

	return body, nil
}

func parseFlights(body []byte) ([]domain.Flight, error) {
	var doc any
	if err := decodeNumbers(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrJSON, err)
	}

	v, _ := lookup(doc, "items")
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: items", domain.ErrMissingField)
	}

	flights := make([]domain.Flight, 0, len(items))
	for i, item := range items {
		f, err := flightFromItem(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		flights = append(flights, f)
	}

	return flights, nil
}
