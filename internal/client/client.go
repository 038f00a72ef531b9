// Package client fetches the booth directory from the circle search API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/domain"
)

// Client reads GET /data from a running API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for the server at baseURL (e.g. "http://localhost:5001").
// A nil hc falls back to http.DefaultClient.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// FetchBooths returns every booth served by /data.
// Any failure wraps domain.ErrFetch and no booths are returned.
func (c *Client) FetchBooths(ctx context.Context) ([]domain.Booth, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data", nil)
	if err != nil {
		return nil, fmt.Errorf("client.FetchBooths: %w: %w", domain.ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.FetchBooths: %w: %w", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("client.FetchBooths: %w: status %d: %s",
			domain.ErrFetch, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var booths []domain.Booth
	if err := json.NewDecoder(resp.Body).Decode(&booths); err != nil {
		return nil, fmt.Errorf("client.FetchBooths: %w: decode: %w", domain.ErrFetch, err)
	}
	if booths == nil {
		booths = []domain.Booth{}
	}
	return booths, nil
}
