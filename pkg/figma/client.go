package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

const (
	figmaAPIBase = "https://api.figma.com/v1"
	maxRetries   = 3
)

// Client is a minimal Figma REST API client used to fetch design files
// whose styles are overlaid on extracted branding data.
type Client struct {
	accessToken string
	baseURL     string
	retryDelay  time.Duration
	httpClient  *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different API root, e.g. a test server.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithRetryDelay sets the base delay between attempts; attempt n waits n*delay.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *Client) { c.retryDelay = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new Figma API client with the provided personal access token.
func NewClient(accessToken string, opts ...ClientOption) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	c := &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		retryDelay:  2 * time.Second,
		httpClient: &http.Client{
			Timeout:   5 * time.Minute,
			Transport: transport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var fileKeyPattern = regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|\?|$)`)

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g., figma.com/file/ABC123/Design-Name).
func ExtractFileKey(figmaURL string) (string, error) {
	matches := fileKeyPattern.FindStringSubmatch(figmaURL)
	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

// GetFile retrieves the document tree of a Figma file. Rate limits (429) and
// server errors (5xx) are retried up to three times with a linear backoff.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*FileResponse, error) {
	url := fmt.Sprintf("%s/files/%s", c.baseURL, fileKey)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		fileResp, retry, err := c.getFileOnce(ctx, url)
		if err == nil {
			return fileResp, nil
		}
		lastErr = fmt.Errorf("attempt %d: %w", attempt, err)
		if !retry || attempt == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * c.retryDelay):
		}
	}

	return nil, lastErr
}

func (c *Client) getFileOnce(ctx context.Context, url string) (*FileResponse, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Figma-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retry, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var fileResp FileResponse
	if err := json.Unmarshal(body, &fileResp); err != nil {
		return nil, false, fmt.Errorf("failed to parse response: %w", err)
	}

	return &fileResp, false, nil
}
