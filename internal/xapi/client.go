package xapi

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

const defaultBaseURL = "https://api.x.com"

// HTTPClient implements Client against the platform's v2 HTTP API
type HTTPClient struct {
	client  *http.Client
	baseURL string
	token   string
}

// Option configures an HTTPClient
type Option func(*HTTPClient)

// WithBaseURL overrides the API base URL (used by tests)
func WithBaseURL(base string) Option {
	return func(c *HTTPClient) {
		c.baseURL = strings.TrimSuffix(base, "/")
	}
}

// NewHTTPClient creates a client authenticated with a bearer token
func NewHTTPClient(token string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
		token:   token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchNews queries the curated news search endpoint
func (c *HTTPClient) SearchNews(ctx context.Context, query string, opts NewsOptions) (*NewsResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	if opts.MaxResults > 0 {
		params.Set("max_results", strconv.Itoa(opts.MaxResults))
	}
	if opts.MaxAgeHours > 0 {
		params.Set("max_age_hours", strconv.Itoa(opts.MaxAgeHours))
	}

	var result NewsResponse
	if err := c.get(ctx, "/2/news/search", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchRecentPosts queries the recent-post search endpoint, expanding
// author records and requesting public metrics
func (c *HTTPClient) SearchRecentPosts(ctx context.Context, query string, opts PostOptions) (*PostResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	if opts.StartTime != "" {
		params.Set("start_time", opts.StartTime)
	}
	if opts.MaxResults > 0 {
		params.Set("max_results", strconv.Itoa(opts.MaxResults))
	}
	if opts.SortOrder != "" {
		params.Set("sort_order", opts.SortOrder)
	}
	params.Set("tweet.fields", "created_at,public_metrics,author_id")
	params.Set("expansions", "author_id")
	params.Set("user.fields", "name,username,verified")

	var result PostResponse
	if err := c.get(ctx, "/2/tweets/search/recent", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// get performs an authenticated GET and decodes the JSON response
func (c *HTTPClient) get(ctx context.Context, path string, params url.Values, out any) error {
	apiURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		msg := strings.TrimSpace(string(body))
		if msg != "" {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
