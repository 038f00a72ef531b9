// Package graph forwards photo-listing queries to the Facebook Graph API.
// The response body is treated as opaque JSON and relayed unchanged.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/domain"
)

// maxBodyBytes bounds how much of an upstream response is buffered.
const maxBodyBytes = 8 << 20

// Config configures a Client.
type Config struct {
	// BaseURL is the Graph API origin, e.g. "https://graph.facebook.com".
	BaseURL string
	// Version is the API version path segment, e.g. "v22.0".
	Version string
	// RequestsPerSecond throttles outgoing calls. Zero or negative disables throttling.
	RequestsPerSecond float64
	// HTTPClient is used for outgoing calls. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Client calls the Graph API photos edge.
// It is safe for concurrent use.
type Client struct {
	baseURL string
	version string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient constructs a Client from cfg.
func NewClient(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	limit := rate.Inf
	burst := 1
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		burst = max(1, int(cfg.RequestsPerSecond))
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		version: strings.Trim(cfg.Version, "/"),
		http:    hc,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Photos fetches GET /{version}/{pageID}/photos with the caller's access token.
// The raw JSON body is returned on a 2xx answer; anything else wraps
// domain.ErrUpstream.
func (c *Client) Photos(ctx context.Context, accessToken, pageID string) (json.RawMessage, error) {
	if accessToken == "" || pageID == "" {
		return nil, fmt.Errorf("graph.Client.Photos: %w: access token and page ID are required", domain.ErrValidation)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("graph.Client.Photos: rate limit: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s/photos?%s",
		c.baseURL, c.version, url.PathEscape(pageID),
		url.Values{"access_token": {accessToken}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("graph.Client.Photos: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graph.Client.Photos: %w: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("graph.Client.Photos: %w: read body: %w", domain.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("graph.Client.Photos: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("graph.Client.Photos: %w: response is not JSON", domain.ErrUpstream)
	}
	return json.RawMessage(body), nil
}
