// Package optouthub is a client for the OptOutHub contact-suppression and
// compliance platform API.
package optouthub

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/optouthub/optouthub-go/internal/xhttp"
)

// DefaultBaseURL is the platform's production API host.
const DefaultBaseURL = "https://api.optouthub.com/v1"

// DefaultTimeout bounds every request; the request is aborted once exceeded.
const DefaultTimeout = 30 * time.Second

type Client struct {
	Contacts ContactService
	Webhooks WebhookService
	Links    LinkService
	Offers   OfferService
	Exports  ExportService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(apiKey string, opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &apiTransport{base: xhttp.NewTransport(), apiKey: cfg.apiKey},
			Timeout:   cfg.timeout,
		}
	}

	c := &Client{
		baseURL:    cfg.baseURL,
		httpClient: httpClient,
		logger:     cfg.logger,
	}

	c.Contacts = &contactService{client: c}
	c.Webhooks = &webhookService{client: c}
	c.Links = &linkService{client: c}
	c.Offers = &offerService{client: c}
	c.Exports = &exportService{client: c}

	return c
}

type clientConfig struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	logger     *slog.Logger
	httpClient *http.Client
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

// WithHTTPClient replaces the underlying http.Client entirely. The caller
// becomes responsible for attaching the x-api-key header.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *clientConfig) { cfg.httpClient = httpClient }
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := go_json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("decoding response: %w\nbody: %s", err, string(data))
	}
	return nil
}

// doRaw is like do but hands the response body to the caller, for endpoints
// that stream non-JSON content.
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values) (io.ReadCloser, error) {
	resp, err := c.send(ctx, method, path, query, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := go_json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	if resp.StatusCode >= 400 {
		defer func() { _ = resp.Body.Close() }()
		return nil, parseAPIError(resp)
	}
	return resp, nil
}

type apiTransport struct {
	base   http.RoundTripper
	apiKey string
}

var _ http.RoundTripper = (*apiTransport)(nil)

func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set(xhttp.XAPIKey, t.apiKey)
	req.Header.Set(xhttp.ContentType, "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
