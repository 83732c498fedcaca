package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the Google Maps Geocoding API endpoint
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/geocode"
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 5 * time.Second
	// DefaultRateLimit in requests per second
	DefaultRateLimit = rate.Limit(10.0)
	// MaxRetries for transient errors
	MaxRetries = 2
	// RetryBaseDelay is the initial backoff delay
	RetryBaseDelay = 1 * time.Second
)

// Client handles communication with the Google Maps Geocoding API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRateLimit sets a custom rate limit (requests per second).
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new Geocoding API client.
// baseURL should be the API endpoint (e.g., DefaultBaseURL) and apiKey
// a Google Maps Platform key with the Geocoding API enabled.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(DefaultRateLimit, 1),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Geocode performs forward geocoding (free-text address -> results).
// The raw result set is returned as-is; an empty slice means the API
// answered with ZERO_RESULTS.
func (c *Client) Geocode(ctx context.Context, address string) ([]Result, error) {
	if address == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	requestURL := fmt.Sprintf("%s/json?%s", c.baseURL, params.Encode())

	var envelope responseEnvelope
	if err := c.doWithRetry(ctx, requestURL, &envelope); err != nil {
		return nil, fmt.Errorf("geocode: %w", err)
	}

	switch envelope.Status {
	case "OK":
		return envelope.Results, nil
	case "ZERO_RESULTS":
		return []Result{}, nil
	default:
		if envelope.ErrorMessage != "" {
			return nil, fmt.Errorf("geocode: %s: %s", envelope.Status, envelope.ErrorMessage)
		}
		return nil, fmt.Errorf("geocode: unexpected status %s", envelope.Status)
	}
}

// doWithRetry executes an HTTP GET request with exponential backoff
// retry on network errors, 429 and 5xx responses. The call is a read,
// so retrying is safe.
func (c *Client) doWithRetry(ctx context.Context, requestURL string, result interface{}) error {
	var lastErr error

	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			delay := RetryBaseDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("http request: %w", err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limited (429)")
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error (%d)", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
		}

		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse json: %w", err)
		}

		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}
