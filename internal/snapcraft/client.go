package snapcraft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.snapcraft.io"

// ErrSnapNotFound is returned when the store has no declaration for the
// requested snap id.
var ErrSnapNotFound = errors.New("snap not found")

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the store endpoint (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// Client resolves snap ids to display names via the snapcraft.io
// snap-declaration assertion. Lookups are idempotent and never retried or
// cached here; the store does its own caching.
type Client struct {
	httpClient HTTPClient
	baseURL    string
}

// NewClient creates a new snapcraft.io client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type assertionResponse struct {
	Headers struct {
		SnapName string `json:"snap-name"`
	} `json:"headers"`
}

// SnapName resolves a snap id to its registered name.
func (c *Client) SnapName(ctx context.Context, snapID string) (string, error) {
	url := fmt.Sprintf("%s/v2/assertions/snap-declaration/16/%s", c.baseURL, snapID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrSnapNotFound, snapID)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("snapcraft.io returned HTTP %d for %s", resp.StatusCode, snapID)
	}

	var assertion assertionResponse
	if err := json.NewDecoder(resp.Body).Decode(&assertion); err != nil {
		return "", fmt.Errorf("failed to parse assertion: %w", err)
	}
	if assertion.Headers.SnapName == "" {
		return "", fmt.Errorf("assertion for %s carries no snap-name", snapID)
	}

	return assertion.Headers.SnapName, nil
}
