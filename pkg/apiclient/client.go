package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arbadelivery/deliverykit/pkg/notifications"
	"github.com/arbadelivery/deliverykit/pkg/orders"
	"github.com/arbadelivery/deliverykit/pkg/realtime"
)

// Config carries the client's environment-tunable settings.
type Config struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
	Timeout time.Duration `env:"API_REQUEST_TIMEOUT" envDefault:"15s"`
}

// Client talks to the delivery platform backend. Create one with New and
// share it; it is safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default pooled HTTP client; useful for custom
// transports and tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTokenSource sets where the bearer token comes from. Without it all
// requests go out anonymous.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the backend at cfg.BaseURL.
func New(cfg Config, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https", ErrInvalidBaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: timeout,
		logger:  slog.Default(),
		http: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// envelope is the wire format every endpoint shares.
type envelope[T any] struct {
	Data  *T     `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// doRequest performs one round trip and unwraps the envelope. A nil Data on
// success is allowed for endpoints that return nothing (logout).
func doRequest[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	// Per-request timeout layered on top of the caller's context.
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.AuthToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("apiclient: token source: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// 1MB cap: envelope responses are small, runaway bodies are a bug.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("apiclient: read response: %w", err)
	}

	var env envelope[T]
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("apiclient: decode response (status %d): %w", resp.StatusCode, err)
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, env.Error)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, env.Error)
	}

	if env.Error != "" {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	return env.Data, nil
}

// Login exchanges credentials for an auth session.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthSession, error) {
	sess, err := doRequest[AuthSession](ctx, c, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, &APIError{StatusCode: http.StatusOK, Message: "login response missing session"}
	}
	return sess, nil
}

// Register creates an account and returns its auth session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthSession, error) {
	sess, err := doRequest[AuthSession](ctx, c, http.MethodPost, "/auth/register", req)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, &APIError{StatusCode: http.StatusOK, Message: "register response missing session"}
	}
	return sess, nil
}

// Logout invalidates the current token server-side. Clearing the local
// session store is the caller's job.
func (c *Client) Logout(ctx context.Context) error {
	_, err := doRequest[struct{}](ctx, c, http.MethodPost, "/auth/logout", nil)
	return err
}

// GetOrders lists the orders visible to the current user.
func (c *Client) GetOrders(ctx context.Context) ([]orders.Order, error) {
	list, err := doRequest[[]orders.Order](ctx, c, http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return []orders.Order{}, nil
	}
	return *list, nil
}

// GetOrder fetches a single order.
func (c *Client) GetOrder(ctx context.Context, id string) (*orders.Order, error) {
	return doRequest[orders.Order](ctx, c, http.MethodGet, "/orders/"+url.PathEscape(id), nil)
}

// CreateOrder places a new delivery order.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*orders.Order, error) {
	return doRequest[orders.Order](ctx, c, http.MethodPost, "/orders", req)
}

// GetNotifications lists the current user's notifications.
func (c *Client) GetNotifications(ctx context.Context) ([]notifications.Notification, error) {
	list, err := doRequest[[]notifications.Notification](ctx, c, http.MethodGet, "/notifications", nil)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return []notifications.Notification{}, nil
	}
	return *list, nil
}

// FetchUpdates retrieves the latest real-time delta. It satisfies
// realtime.Source so the client can back a tracker directly.
func (c *Client) FetchUpdates(ctx context.Context) (*realtime.Updates, error) {
	return doRequest[realtime.Updates](ctx, c, http.MethodGet, "/updates/real-time", nil)
}
