package lawallet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lacrypta/satsback-api/internal/logger"
)

const (
	defaultBaseURL = "https://lawallet.ar"
	defaultTimeout = 10 * time.Second
)

// Alias is the human-readable identity resolved for a public key.
type Alias struct {
	Username     string `json:"username"`
	FederationID string `json:"federationId"`
}

// Walias returns the federated address form, username@federationId.
func (a Alias) Walias() string {
	return a.Username + "@" + a.FederationID
}

// APIError represents a non-OK response from the LaWallet API.
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lawallet API request to %s failed with status %d: %s", e.URL, e.StatusCode, e.Body)
}

// Client manages communication with the LaWallet federation API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new LaWallet API client.
func NewClient(options ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger.Log,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// ResolveAlias resolves the username/federation pair registered for a public
// key. Unknown identities and malformed responses are errors; there is no
// degraded "unknown alias" result.
func (c *Client) ResolveAlias(ctx context.Context, pubkey string) (*Alias, error) {
	url := c.baseURL + "/api/pubkey/" + pubkey

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create alias request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "alias request for %s failed", pubkey)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read alias response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Body:       string(body),
		}
	}

	var alias Alias
	if err := json.Unmarshal(body, &alias); err != nil {
		return nil, errors.Wrapf(err, "failed to decode alias response for %s", pubkey)
	}

	if alias.Username == "" || alias.FederationID == "" {
		return nil, errors.Errorf("malformed alias response for %s: %s", pubkey, string(body))
	}

	c.logger.Debug("alias resolved",
		zap.String("public_key", pubkey),
		zap.String("walias", alias.Walias()))

	return &alias, nil
}
