package rcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Operation names used in error messages and log lines.
const (
	opCoreStats          = "core stats"
	opFilteredCoreStats  = "filtered core stats"
	opCompletedTransfers = "completed transfers"
	opJobStats           = "job stats"
)

// Client implements StatsQuerier over HTTP. It is read-only after New and
// safe for concurrent use; every call is a single POST with no retry.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	logger           *slog.Logger
	driveLetterPaths bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the shared HTTP client. Timeouts, proxies and auth
// transports belong on this client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDriveLetterPaths controls whether CompletedTransfers strips
// extended-length prefixes from srcFs/dstFs. Defaults to DriveLetterPlatform().
func WithDriveLetterPaths(enabled bool) Option {
	return func(c *Client) {
		c.driveLetterPaths = enabled
	}
}

// New creates a Client for the daemon API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:          baseURL,
		httpClient:       &http.Client{},
		logger:           slog.Default(),
		driveLetterPaths: DriveLetterPlatform(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured daemon API address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CoreStats returns global statistics.
func (c *Client) CoreStats(ctx context.Context) (any, error) {
	body, err := c.post(ctx, opCoreStats, EndpointStats, nil)
	if err != nil {
		return nil, err
	}
	return c.decode(opCoreStats, body)
}

// CoreStatsFiltered returns statistics for req's group, its job's group, or globally.
func (c *Client) CoreStatsFiltered(ctx context.Context, req StatsRequest) (any, error) {
	switch {
	case req.Group != nil:
		c.logger.Debug("getting core stats for group", "group", *req.Group)
	case req.JobID != nil:
		c.logger.Debug("getting core stats for job", "jobid", *req.JobID)
	default:
		c.logger.Debug("getting global core stats")
	}

	payload, err := FilteredPayload(req)
	if err != nil {
		return nil, fmt.Errorf("build stats payload: %w", err)
	}

	body, err := c.post(ctx, opFilteredCoreStats, EndpointStats, payload)
	if err != nil {
		return nil, err
	}
	return c.decode(opFilteredCoreStats, body)
}

// CompletedTransfers returns the daemon's completed transfers, optionally for one group.
func (c *Client) CompletedTransfers(ctx context.Context, group *string) (any, error) {
	payload, err := GroupPayload(group)
	if err != nil {
		return nil, fmt.Errorf("build transferred payload: %w", err)
	}

	body, err := c.post(ctx, opCompletedTransfers, EndpointTransferred, payload)
	if err != nil {
		return nil, err
	}

	doc, err := c.decode(opCompletedTransfers, body)
	if err != nil {
		return nil, err
	}
	if c.driveLetterPaths {
		c.logger.Debug("normalizing paths in completed transfers")
		doc = NormalizeTransferPaths(doc)
	}
	return doc, nil
}

// JobStats returns statistics for jobID, with group merged into the request when set.
func (c *Client) JobStats(ctx context.Context, jobID uint64, group *string) (any, error) {
	payload, err := JobPayload(jobID, group)
	if err != nil {
		return nil, fmt.Errorf("build job stats payload: %w", err)
	}

	body, err := c.post(ctx, opJobStats, EndpointStats, payload)
	if err != nil {
		return nil, err
	}
	return c.decode(opJobStats, body)
}

// endpointURL joins the base address and an endpoint path with a single slash.
func (c *Client) endpointURL(endpoint string) string {
	return strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// post sends one POST and returns the response body of a 2xx reply.
// A nil payload sends no body at all.
func (c *Client) post(ctx context.Context, op, endpoint string, payload []byte) ([]byte, error) {
	url := c.endpointURL(endpoint)

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reqBody)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("requesting daemon", "op", op, "url", url, "payload", string(payload))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("daemon request failed", "op", op, "error", err)
		return nil, &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	// A failed body read is treated as an empty body; the status line still decides success.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("read daemon response body", "op", op, "error", err)
		body = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("daemon returned error status", "op", op, "status", resp.StatusCode, "body", string(body))
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	c.logger.Debug("daemon response", "op", op, "body", string(body))
	return body, nil
}

// decode parses body as exactly one JSON value. Numbers are kept as
// json.Number so integers beyond 2^53 survive unchanged.
func (c *Client) decode(op string, body []byte) (any, error) {
	value, err := decodeDocument(body)
	if err != nil {
		c.logger.Error("parse daemon response", "op", op, "error", err)
		return nil, &ParseError{Op: op, Err: err}
	}
	return value, nil
}

func decodeDocument(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	var extra any
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return value, nil
	case err != nil:
		return nil, err
	default:
		return nil, errors.New("invalid data after top-level value")
	}
}

// Verify Client implements StatsQuerier interface.
var _ StatsQuerier = (*Client)(nil)
