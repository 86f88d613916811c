// Package searchclient executes search requests against the docket search endpoint.
package searchclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"mirrsearch/internal/domain"
	"mirrsearch/internal/query"
)

const maxBodyBytes = 32 << 20

// Searcher executes a search request
type Searcher interface {
	Search(ctx context.Context, req domain.QueryRequest) (*Response, error)
}

// Response is a decoded search response
type Response struct {
	Results      []domain.Result
	TotalResults int // -1 when the backend did not report a total
	RequestID    string
}

// Client talks to the search endpoint over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	metrics    *Metrics
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request; zero disables the bound
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithMetrics records request outcomes
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a client for the endpoint at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the endpoint base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search sends req and decodes the JSON array in the response body.
// Errors match ErrTransport or ErrMalformedResponse.
func (c *Client) Search(ctx context.Context, req domain.QueryRequest) (*Response, error) {
	target, err := query.URL(c.baseURL, req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	log.Printf("Search %s: GET %s", requestID, target)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(OutcomeNetwork, started, 0)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		c.metrics.observe(OutcomeHTTPError, started, 0)
		return nil, &TransportError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.metrics.observe(OutcomeNetwork, started, 0)
		return nil, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	var results []domain.Result
	if err := json.Unmarshal(body, &results); err != nil {
		c.metrics.observe(OutcomeMalformed, started, 0)
		return nil, &MalformedResponseError{Err: err}
	}
	if results == nil {
		results = []domain.Result{}
	}

	c.metrics.observe(OutcomeOK, started, len(results))
	log.Printf("Search %s: %d results in %s", requestID, len(results), time.Since(started).Round(time.Millisecond))

	return &Response{
		Results:      results,
		TotalResults: totalResults(resp.Header),
		RequestID:    requestID,
	}, nil
}

func totalResults(h http.Header) int {
	v := h.Get("X-Total-Results")
	if v == "" {
		return -1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return -1
	}
	return n
}
