// Package httpapi provides a SearchGateway adapter over the search
// service's JSON HTTP API. The service owns the index and the query
// DSL; this client only moves JSON across the wire.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchGateway = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond bounds how fast facet toggling can
	// hammer the service; toggles resubmit immediately.
	DefaultRequestsPerSecond = 10
	defaultBurst             = 20
)

// Endpoint paths, part of the wire contract.
const (
	sparseSearchPath = "/api/search-semantic-sparse"
	denseSearchPath  = "/api/search-semantic-dense"
	documentPath     = "/api/document/"
	contextPath      = "/api/context"
)

// Config holds configuration for the HTTP gateway.
type Config struct {
	// BaseURL is the search service base URL (default: http://localhost:5000).
	BaseURL string

	// Token is an optional bearer token sent with every request.
	Token string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond caps the request rate (default: 10).
	RequestsPerSecond float64
}

// Client is an HTTP implementation of driven.SearchGateway.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
	limiter *rate.Limiter
}

// errorBody is the error envelope the service uses for non-2xx
// responses.
type errorBody struct {
	Error string `json:"error"`
}

// NewClient creates a gateway client for the search service.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), defaultBurst),
	}
}

// Search posts a request to the endpoint for the given mode.
func (c *Client) Search(
	ctx context.Context, mode domain.SearchMode, req domain.SearchRequest,
) (*domain.SearchResponse, error) {
	var path string
	switch mode {
	case domain.ModeSparse:
		path = sparseSearchPath
	case domain.ModeDense:
		path = denseSearchPath
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMode, mode)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	jsonBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	logger.Debug("POST %s%s body=%s", c.baseURL, path, jsonBody)

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorise(httpReq)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, c.decodeError(resp)
	}

	var searchResp domain.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	logger.Debug("Search %s: total=%d, hits=%d", mode, searchResp.Total, len(searchResp.Hits))

	return &searchResp, nil
}

// Line fetches a single corpus line by ID.
func (c *Client) Line(ctx context.Context, lineID int) (*domain.PlayLine, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + documentPath + strconv.Itoa(lineID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.authorise(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if !is2xx(resp.StatusCode) {
		return nil, c.decodeError(resp)
	}

	var line domain.PlayLine
	if err := json.NewDecoder(resp.Body).Decode(&line); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &line, nil
}

// Context fetches the lines surrounding lineID within playName.
func (c *Client) Context(
	ctx context.Context, playName string, lineID, size int,
) ([]domain.PlayLine, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	q := url.Values{}
	q.Set("play_name", playName)
	q.Set("line_id", strconv.Itoa(lineID))
	q.Set("size", strconv.Itoa(size))

	u := c.baseURL + contextPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.authorise(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, c.decodeError(resp)
	}

	var lines []domain.PlayLine
	if err := json.NewDecoder(resp.Body).Decode(&lines); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return lines, nil
}

// authorise attaches the bearer token when one is configured.
func (c *Client) authorise(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// decodeError turns a non-2xx response into an APIError carrying the
// server message when the body follows the {"error": ...} envelope,
// or the raw status otherwise.
func (c *Client) decodeError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("search service returned status %d", resp.StatusCode),
		}
	}

	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("search service returned status %d: %s", resp.StatusCode, body),
	}
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
