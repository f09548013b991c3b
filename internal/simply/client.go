// Package simply is a typed client for the Simply.com DNS API (v2).
//
// The client is a thin translation layer: it builds authenticated requests
// for the DNS record endpoints and decodes the JSON responses into typed
// structs. It holds no mutable state across calls, so a single Client is
// safe for concurrent use. It does not retry, cache, paginate, or validate
// record values; the remote service is the source of truth.
package simply

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.simply.com/2"
	defaultTimeout = 30 * time.Second

	// bodyExcerptLen caps how much of a malformed body is kept on a DecodeError.
	bodyExcerptLen = 512
)

// Client calls the Simply.com DNS API on behalf of one account.
// Credentials are fixed at construction and sent as HTTP basic auth.
type Client struct {
	account string
	apiKey  string
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the client
// at a local server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// New returns a Client for the given account name and API key.
// No network activity happens here; empty credentials are accepted and will
// simply be rejected by the remote service.
func New(account, apiKey string, opts ...Option) *Client {
	c := &Client{
		account: account,
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// recordsPath returns the DNS records collection path for a domain.
func recordsPath(domain string) string {
	return "/my/products/" + domain + "/dns/records"
}

// recordPath returns the path for a single DNS record.
func recordPath(domain string, recordID int) string {
	return fmt.Sprintf("%s/%d", recordsPath(domain), recordID)
}

// ListDNSRecords returns all DNS records for the given domain, in the order
// the service reports them.
func (c *Client) ListDNSRecords(ctx context.Context, domain string) ([]Record, error) {
	var out listRecordsResponse
	if err := c.do(ctx, http.MethodGet, recordsPath(domain), nil, &out); err != nil {
		return nil, err
	}
	if err := envelopeErr(out.Status, out.Message); err != nil {
		return nil, err
	}
	return out.Records, nil
}

// CreateDNSRecord creates a DNS record under the given domain and returns
// the service's confirmation payload, including the assigned record ID.
func (c *Client) CreateDNSRecord(ctx context.Context, domain string, req CreateRecordRequest) (*CreateRecordResponse, error) {
	var out CreateRecordResponse
	if err := c.do(ctx, http.MethodPost, recordsPath(domain), req, &out); err != nil {
		return nil, err
	}
	if err := envelopeErr(out.Status, out.Message); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDNSRecord replaces the fields of an existing record. A record ID
// unknown to the service yields an APIError, never a silent no-op.
func (c *Client) UpdateDNSRecord(ctx context.Context, domain string, recordID int, req UpdateRecordRequest) (*UpdateRecordResponse, error) {
	var out UpdateRecordResponse
	if err := c.do(ctx, http.MethodPut, recordPath(domain, recordID), req, &out); err != nil {
		return nil, err
	}
	if err := envelopeErr(out.Status, out.Message); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDNSRecord removes a record. The returned envelope carries only the
// remote status and message.
func (c *Client) DeleteDNSRecord(ctx context.Context, domain string, recordID int) (*DeleteRecordResponse, error) {
	var out DeleteRecordResponse
	if err := c.do(ctx, http.MethodDelete, recordPath(domain, recordID), nil, &out); err != nil {
		return nil, err
	}
	if err := envelopeErr(out.Status, out.Message); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one authenticated request and decodes the response into out.
// Failures are classified per the client's error taxonomy: TransportError
// before a response exists, APIError for remote-signalled failures, and
// DecodeError for a 2xx body that does not parse.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.SetBasicAuth(c.account, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apiErrorFromBody(resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Err: err, Body: excerpt(raw)}
	}

	return nil
}

// apiErrorFromBody builds an APIError for a non-2xx response, preferring
// the remote envelope's status and message when the body parses.
func apiErrorFromBody(httpStatus int, raw []byte) error {
	var env struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		status := env.Status
		if status == 0 {
			status = httpStatus
		}
		return &APIError{Status: status, Message: env.Message}
	}
	return &APIError{Status: httpStatus, Message: http.StatusText(httpStatus)}
}

// excerpt truncates a raw body for inclusion in a DecodeError.
func excerpt(raw []byte) string {
	if len(raw) > bodyExcerptLen {
		raw = raw[:bodyExcerptLen]
	}
	return string(raw)
}
