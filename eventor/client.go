package eventor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the root of the Swedish Eventor API.
const DefaultBaseURL = "https://eventor.orientering.se/api/"

// apiKeyHeader is sent verbatim; http.Header.Set would canonicalize it to "Apikey".
const apiKeyHeader = "ApiKey"

// Client wraps the Eventor API. It holds no mutable state and may be shared
// between goroutines.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Eventor client. No request is made until an
// endpoint method is called.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if _, err := url.Parse(o.baseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL %q: %v", ErrInvalidConfig, o.baseURL, err)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		baseURL:    o.baseURL,
		apiKey:     apiKey,
		userAgent:  o.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// execute performs a GET against path and parses the XML body.
// The body is parsed whatever the status code, since Eventor reports
// application errors as XML documents.
func (c *Client) execute(ctx context.Context, path string, q url.Values) (Node, error) {
	requestURL := c.baseURL + path
	if len(q) > 0 {
		requestURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &RequestError{Path: path, Err: err}
	}

	req.Header[apiKeyHeader] = []string{c.apiKey}
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Path: path, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("Eventor request completed")

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("Eventor returned non-OK status, parsing body anyway")
	}

	node, err := parseXML(body)
	if err != nil {
		return nil, &ParseError{Path: path, StatusCode: resp.StatusCode, Err: err}
	}

	return node, nil
}
