// Package webhook posts finished analysis reports to HTTP endpoints.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chatlens/chatlens/pkg/output"
)

// DefaultTimeout bounds a delivery when the endpoint config gives none.
const DefaultTimeout = 10 * time.Second

// maxResponseBody caps how much of the endpoint's reply is retained.
const maxResponseBody = 1 << 20

// Client delivers analysis reports to webhook endpoints.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a webhook client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

// SendOptions configures a single delivery.
type SendOptions struct {
	URL     string
	Token   string        // Bearer token (optional)
	Trigger string        // Trigger that fired the delivery, echoed in the payload
	Timeout time.Duration // Per-request timeout (DefaultTimeout if zero)
}

// payload is the document posted to an endpoint: the full report wrapped
// with the delivery context a receiver cannot recover from the report
// alone.
type payload struct {
	Event   string         `json:"event"`
	Trigger string         `json:"trigger,omitempty"`
	Sender  string         `json:"sender,omitempty"`
	SentAt  time.Time      `json:"sent_at"`
	Report  *output.Report `json:"report"`
}

// Response is the outcome of one delivery attempt.
type Response struct {
	StatusCode int
	Body       string
	Duration   time.Duration
	Error      error
}

// Success reports whether the delivery reached the endpoint with a 2xx
// status.
func (r *Response) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Send posts the report to the endpoint. Delivery failures are captured in
// the Response rather than returned, since a failed webhook never fails
// the analysis that produced the report.
func (c *Client) Send(ctx context.Context, report *output.Report, opts SendOptions) *Response {
	start := time.Now()
	status, body, err := c.post(ctx, report, opts)

	resp := &Response{
		StatusCode: status,
		Body:       body,
		Duration:   time.Since(start),
		Error:      err,
	}
	if err == nil && status >= 400 {
		resp.Error = fmt.Errorf("endpoint returned status %d", status)
	}
	return resp
}

func (c *Client) post(ctx context.Context, report *output.Report, opts SendOptions) (int, string, error) {
	doc := payload{
		Event:   "analysis.completed",
		Trigger: opts.Trigger,
		Sender:  report.Metadata.Sender,
		SentAt:  time.Now().UTC(),
		Report:  report,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return 0, "", fmt.Errorf("encoding payload: %w", err)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.URL, bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "chatlens-webhook")
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("posting report: %w", err)
	}
	defer httpResp.Body.Close()

	replyBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBody))
	if err != nil {
		return httpResp.StatusCode, "", fmt.Errorf("reading response: %w", err)
	}

	return httpResp.StatusCode, string(replyBody), nil
}
