package safe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/trebuchet-org/safe-propose/internal/domain"
)

// DefaultTimeout is applied to every request made by the client
const DefaultTimeout = 30 * time.Second

// Client talks to a Safe Transaction Service instance
type Client struct {
	chainID    uint64
	serviceURL string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for the service configured in cfg
func NewClient(cfg domain.RelayServiceConfig, opts ...Option) (*Client, error) {
	if cfg.ServiceURL == "" {
		return nil, fmt.Errorf("%w: chain ID %d", domain.ErrUnsupportedRelayChain, cfg.ChainID)
	}

	c := &Client{
		chainID:    cfg.ChainID,
		serviceURL: strings.TrimRight(cfg.ServiceURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ChainID returns the chain the client was configured for
func (c *Client) ChainID() uint64 {
	return c.chainID
}

// ServiceURL returns the base URL of the service, including the /api suffix
func (c *Client) ServiceURL() string {
	return c.serviceURL
}

// getJSON performs a GET request and decodes a 200 response into out
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, http.StatusOK, out)
}

// postJSON performs a POST request with a JSON body and expects wantStatus
func (c *Client) postJSON(ctx context.Context, path string, body any, wantStatus int) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, payload, wantStatus, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, wantStatus int, out any) error {
	url := c.serviceURL + path

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		respBody, _ := io.ReadAll(resp.Body)
		return &domain.RelayError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
