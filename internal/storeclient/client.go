package storeclient

import (
	"net/http"
	"strings"
	"time"

	"sneaker-auction/internal/auth"
	"sneaker-auction/internal/repository"
)

// Default values for client options.
const (
	DefaultTimeout       = 10 * time.Second
	DefaultPrizeSinkPath = "/prizeSink"
)

// Client provides access to the remote store REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.TokenStore
	prizePath  string
}

var (
	_ repository.LotRepository  = (*Client)(nil)
	_ repository.LotCreator     = (*Client)(nil)
	_ repository.UserRepository = (*Client)(nil)
	_ repository.PrizeSink      = (*Client)(nil)
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new remote store client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		prizePath: DefaultPrizeSinkPath,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTokenStore attaches the stored bearer token to every request.
func WithTokenStore(ts auth.TokenStore) ClientOption {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithPrizeSinkPath overrides the collection prizes are issued to.
func WithPrizeSinkPath(path string) ClientOption {
	return func(c *Client) {
		if path != "" {
			c.prizePath = "/" + strings.Trim(path, "/")
		}
	}
}
