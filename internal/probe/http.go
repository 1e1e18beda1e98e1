// Package probe issues the HTTP requests against the Metro bundler.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Response is what a probe kept from an HTTP response
type Response struct {
	StatusCode int
	Body       []byte
}

// Size returns the body length in bytes
func (r *Response) Size() int {
	return len(r.Body)
}

// OK reports a 200 response
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Contains reports whether the body contains s
func (r *Response) Contains(s string) bool {
	return strings.Contains(string(r.Body), s)
}

// Prober sends GET requests relative to a base URL
type Prober struct {
	baseURL string
	client  *http.Client
}

// NewProber creates a Prober for baseURL. A nil client uses a fresh http.Client.
func NewProber(baseURL string, client *http.Client) *Prober {
	if client == nil {
		client = &http.Client{}
	}
	return &Prober{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// URL returns the absolute URL for path
func (p *Prober) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return p.baseURL + path
}

// Get fetches path with its own timeout and reads the full body.
// Transport errors and timeouts are returned as errors.
func (p *Prober) Get(ctx context.Context, path string, timeout time.Duration) (*Response, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL(path), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Response{StatusCode: res.StatusCode, Body: body}, nil
}
