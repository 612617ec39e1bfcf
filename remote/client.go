package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepwalk/engine"
	"github.com/katalvlaran/stepwalk/steps"
)

// maxReplyBytes bounds the size of a decoded reply.
const maxReplyBytes = 64 << 20

// Client computes Dijkstra sequences on a remote Server.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient returns a client for the server at baseURL, e.g.
// "http://localhost:8420".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compute posts req to /v1/dijkstra. Any failure, including a reply that
// engine.CheckReply rejects, is returned wrapped in engine.ErrRemoteComputation.
func (c *Client) Compute(ctx context.Context, req engine.Request) (*steps.Sequence, error) {
	seq, err := c.compute(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrRemoteComputation, err)
	}
	if err := engine.CheckReply(req, seq); err != nil {
		return nil, err
	}

	return seq, nil
}

func (c *Client) compute(ctx context.Context, req engine.Request) (*steps.Sequence, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/dijkstra", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	r := io.LimitReader(resp.Body, maxReplyBytes)
	if resp.StatusCode != http.StatusOK {
		var e ErrorResponse
		if err := json.NewDecoder(r).Decode(&e); err != nil || e.Error == "" {
			return nil, fmt.Errorf("server replied %s", resp.Status)
		}
		return nil, fmt.Errorf("server replied %s: %s (%s)", resp.Status, e.Error, e.Code)
	}

	var seq steps.Sequence
	if err := json.NewDecoder(r).Decode(&seq); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}

	return &seq, nil
}
