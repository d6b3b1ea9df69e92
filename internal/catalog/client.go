package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout applies to catalogs created without an explicit client.
const DefaultTimeout = 20 * time.Second

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize int64 = 8 << 20

const userAgent = "sga-version-checker/1.0"

// Client is the HTTP client shared by the remote catalogs. It turns status
// codes and transport failures into the package's error kinds.
type Client struct {
	http    *http.Client
	header  http.Header
	maxBody int64
}

// NewClient creates a client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		header:  make(http.Header),
		maxBody: DefaultMaxBodySize,
	}
}

// WithHeader returns a copy of c that sends the header on every request.
func (c *Client) WithHeader(key, value string) *Client {
	clone := &Client{http: c.http, header: c.header.Clone(), maxBody: c.maxBody}
	clone.header.Set(key, value)
	return clone
}

// WithMaxBodySize returns a copy of c that rejects bodies larger than n bytes.
func (c *Client) WithMaxBodySize(n int64) *Client {
	if n <= 0 {
		n = DefaultMaxBodySize
	}
	return &Client{http: c.http, header: c.header.Clone(), maxBody: n}
}

// Get performs a GET request and returns the body of a 2xx response.
// A 404 yields ErrNotFound, any other failure ErrTransport, including a
// body larger than the client's size limit. Context
// cancellation is returned as the context's own error.
func (c *Client) Get(ctx context.Context, url string, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	for k, v := range c.header {
		req.Header[k] = v
	}
	req.Header.Set("User-Agent", userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s returned 404", ErrNotFound, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrTransport, url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%w: %s response exceeds %d bytes", ErrTransport, url, c.maxBody)
	}
	return body, nil
}

// GetJSON performs a GET request and decodes the JSON body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}
