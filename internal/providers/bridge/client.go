package bridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/termdeck/termdeck/internal/infrastructure/resilience"
	"github.com/termdeck/termdeck/internal/shared/types"
)

// ErrPermissionDenied is returned when the bridge refuses usage access. The
// catalog treats it like any other usage failure and degrades to empty.
var ErrPermissionDenied = errors.New("bridge denied usage access")

// Config tunes the bridge client. Zero fields take defaults.
type Config struct {
	// URL is the bridge base URL, e.g. http://127.0.0.1:7420.
	URL string
	// Timeout bounds one request including retries. Default 10s.
	Timeout time.Duration
	// Retries is the transport-level retry count. Default 3.
	Retries int
	// RetryWaitMin and RetryWaitMax bound the retry backoff.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// Breaker configures the circuit breaker around bridge calls.
	Breaker resilience.Config
}

// Client calls the platform bridge API.
type Client struct {
	resty   *resty.Client
	breaker *resilience.Breaker
}

// NewClient creates a bridge client with retrying transport and circuit
// breaker.
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RetryWaitMin == 0 {
		cfg.RetryWaitMin = 500 * time.Millisecond
	}
	if cfg.RetryWaitMax == 0 {
		cfg.RetryWaitMax = 5 * time.Second
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.Retries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.Logger = nil

	restyClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "termdeckd/1.0").
		SetHeader("Accept", "application/json")
	restyClient.SetTransport(&retryablehttp.RoundTripper{Client: retryClient})

	return &Client{
		resty:   restyClient,
		breaker: resilience.NewBreaker("bridge", cfg.Breaker),
	}
}

// BreakerState reports the circuit breaker state for health output.
func (c *Client) BreakerState() resilience.State {
	return c.breaker.State()
}

type appPayload struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	System   bool   `json:"system"`
	Game     bool   `json:"game"`
}

type appsResponse struct {
	Apps []appPayload `json:"apps"`
}

type usageEntry struct {
	Identity string    `json:"identity"`
	LastUsed time.Time `json:"last_used"`
}

type usageResponse struct {
	Entries []usageEntry `json:"entries"`
}

type launchRequest struct {
	Identity string `json:"identity"`
}

// Entries fetches the installed applications from the bridge.
func (c *Client) Entries(ctx context.Context) ([]types.Entry, error) {
	var payload appsResponse
	err := c.breaker.Do(func() error {
		resp, err := c.resty.R().
			SetContext(ctx).
			SetResult(&payload).
			Get("/v1/apps")
		if err != nil {
			return fmt.Errorf("bridge request: %w", err)
		}
		if resp.IsError() {
			return fmt.Errorf("bridge responded %s", resp.Status())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]types.Entry, 0, len(payload.Apps))
	for _, app := range payload.Apps {
		entries = append(entries, types.Entry{
			Identity: app.Identity,
			Name:     app.Name,
			Icon:     app.Icon,
			System:   app.System,
			Game:     app.Game,
		})
	}
	return entries, nil
}

// LastUsed fetches per-app last-launch times inside the window.
func (c *Client) LastUsed(ctx context.Context, window time.Duration) (map[string]time.Time, error) {
	var payload usageResponse
	err := c.breaker.Do(func() error {
		resp, err := c.resty.R().
			SetContext(ctx).
			SetQueryParam("window", strconv.Itoa(int(window.Seconds()))).
			SetResult(&payload).
			Get("/v1/usage")
		if err != nil {
			return fmt.Errorf("bridge request: %w", err)
		}
		if resp.StatusCode() == http.StatusForbidden {
			return ErrPermissionDenied
		}
		if resp.IsError() {
			return fmt.Errorf("bridge responded %s", resp.Status())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	used := make(map[string]time.Time, len(payload.Entries))
	for _, e := range payload.Entries {
		used[e.Identity] = e.LastUsed
	}
	return used, nil
}

// Launch asks the bridge to start an application.
func (c *Client) Launch(ctx context.Context, record types.AppRecord) error {
	return c.breaker.Do(func() error {
		resp, err := c.resty.R().
			SetContext(ctx).
			SetBody(launchRequest{Identity: record.Identity}).
			Post("/v1/launch")
		if err != nil {
			return fmt.Errorf("bridge request: %w", err)
		}
		if resp.IsError() {
			return fmt.Errorf("bridge responded %s", resp.Status())
		}
		return nil
	})
}
