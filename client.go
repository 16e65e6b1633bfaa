package mojangapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/simplexservers/mojangapi/internal/logging"
)

const (
	// DefaultBaseURL is the base URL of the Mojang API.
	DefaultBaseURL = "https://api.mojang.com"

	// DefaultTimeout bounds both connecting and reading for a single lookup.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = "mojangapi/1 (+https://github.com/simplexservers/mojangapi)"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client looks up player identities against the Mojang API.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	userAgent  string
}

// Config holds optional client configuration. The zero value of every field
// selects the default.
type Config struct {
	// BaseURL overrides DefaultBaseURL. Trailing slashes are stripped.
	BaseURL string
	// Timeout overrides DefaultTimeout. Ignored when HTTPClient is set;
	// the injected client then owns the timeout.
	Timeout time.Duration
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
	// HTTPClient overrides the default http.Client.
	HTTPClient HTTPClient
}

// NewClient creates a Mojang API client. A nil config uses all defaults.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

func (c *Client) getJSON(ctx context.Context, url string, out any) (bool, error) {
	return c.requestJSON(ctx, http.MethodGet, url, nil, out)
}

func (c *Client) postJSON(ctx context.Context, url string, payload any, out any) (bool, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("failed to encode request payload: %w", err)
	}
	return c.requestJSON(ctx, http.MethodPost, url, body, out)
}

// requestJSON performs a single request and decodes a 200 body into out.
// It returns false without error on a 204, the upstream signal that no
// matching account exists.
func (c *Client) requestJSON(ctx context.Context, method string, url string, payload []byte, out any) (bool, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: failed to send request: %w", ErrTransport, err)
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}
	logging.FromContext(ctx).Info("mojang request completed", "method", method, "url", url, "status", resp.StatusCode, "duration", time.Since(start).String())

	if resp.StatusCode == http.StatusNoContent {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(data)),
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return true, nil
}
