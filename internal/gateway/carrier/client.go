// Package carrier is the HTTP gateway to the courier API. Every call is a
// single JSON POST; the label endpoint answers with binary PDF instead of
// JSON. Carrier-side failures are reported as structured outcomes, not
// errors — only transport failures error out.
package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/domain"
	"carrier-bridge/internal/logx"
)

// Carrier endpoint paths, relative to the configured base URL.
const (
	SitePath     = "location/site/"
	OfficePath   = "location/office/"
	ContractPath = "client/contract/"
	ShipmentPath = "shipment/"
	PrintPath    = "print/"
)

// maxResponseBody bounds how much of a carrier response is read. Label
// PDFs are the largest legitimate bodies.
const maxResponseBody = 16 << 20

// Config stores carrier client settings.
type Config struct {
	BaseURL     string
	Credentials domain.Credentials
	Language    string
}

// Client issues authenticated JSON POST calls to the carrier.
type Client struct {
	httpc    *http.Client
	cfg      Config
	logger   logx.Logger
	requests *prometheus.CounterVec
}

// New creates a carrier Client. The requests counter (path/outcome labels)
// may be nil.
func New(cfg Config, httpc *http.Client, logger logx.Logger, requests *prometheus.CounterVec) *Client {
	if httpc == nil {
		httpc = NewHTTPClient(0)
	}
	return &Client{httpc: httpc, cfg: cfg, logger: logger, requests: requests}
}

// Result is the structured outcome of a JSON call. OK means the transport
// succeeded and the status indicates success, independent of whether the
// body parsed as JSON — plain-text error bodies are legitimate.
type Result struct {
	Status int
	OK     bool
	// Body is the decoded JSON value (object or bare list), nil when the
	// body is not JSON.
	Body any
	Raw  []byte
}

// BinaryResult is the outcome of a label call. Only a PDF or octet-stream
// content-type counts as success; the carrier sometimes returns a 200 JSON
// error body instead of a PDF.
type BinaryResult struct {
	Status      int
	OK          bool
	ContentType string
	PDF         []byte
	Diagnostic  string
}

// CallJSON POSTs the payload (augmented with credentials and the language
// tag) to the given carrier path and decodes the response.
func (c *Client) CallJSON(ctx context.Context, path string, payload any, creds domain.Credentials) (Result, error) {
	status, _, raw, err := c.post(ctx, path, payload, creds)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Status: status,
		OK:     status >= 200 && status < 300,
		Raw:    raw,
	}
	var body any
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil {
		res.Body = body
	}
	c.count(path, outcome(res.OK))
	return res, nil
}

// CallBinary POSTs the payload and expects a binary (PDF) response.
func (c *Client) CallBinary(ctx context.Context, path string, payload any, creds domain.Credentials) (BinaryResult, error) {
	status, header, raw, err := c.post(ctx, path, payload, creds)
	if err != nil {
		return BinaryResult{}, err
	}

	res := BinaryResult{
		Status:      status,
		ContentType: header.Get("Content-Type"),
	}
	res.OK = status >= 200 && status < 300 && isBinaryContentType(res.ContentType)
	if res.OK {
		res.PDF = raw
	} else {
		res.Diagnostic = string(raw)
		c.logger.Warn("carrier returned non-binary label response",
			logx.String("path", path),
			logx.Int("status", status),
			logx.String("content_type", res.ContentType),
		)
	}
	c.count(path, outcome(res.OK))
	return res, nil
}

// Submit is the succeed-or-error calling convention used by the shipment
// creation path: a non-success status becomes an UpstreamError carrying
// the raw carrier body.
func (c *Client) Submit(ctx context.Context, path string, payload any, creds domain.Credentials) (map[string]any, error) {
	res, err := c.CallJSON(ctx, path, payload, creds)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return nil, &apperr.UpstreamError{Status: res.Status, Body: string(res.Raw)}
	}
	if m, ok := res.Body.(map[string]any); ok {
		return m, nil
	}
	return map[string]any{"raw": string(res.Raw)}, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, creds domain.Credentials) (int, http.Header, []byte, error) {
	body, err := c.envelope(payload, creds)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("carrier gateway: encode %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, nil, fmt.Errorf("carrier gateway: request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.count(path, "transport_error")
		return 0, nil, nil, fmt.Errorf("carrier gateway: post %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		c.count(path, "transport_error")
		return 0, nil, nil, fmt.Errorf("carrier gateway: read %s response: %w", path, err)
	}
	return resp.StatusCode, resp.Header, raw, nil
}

// envelope marshals the payload into a map and injects credentials and the
// language tag. Keys already present in the payload win; request-level
// credentials win over configured ones.
func (c *Client) envelope(payload any, creds domain.Credentials) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, err
		}
	}

	eff := creds.Or(c.cfg.Credentials)
	if _, ok := m["username"]; !ok {
		m["username"] = eff.Username
	}
	if _, ok := m["password"]; !ok {
		m["password"] = eff.Password
	}
	if _, ok := m["language"]; !ok {
		m["language"] = c.cfg.Language
	}
	return json.Marshal(m)
}

func (c *Client) count(path, outcome string) {
	if c.requests != nil {
		c.requests.WithLabelValues(path, outcome).Inc()
	}
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

func isBinaryContentType(ct string) bool {
	return strings.HasPrefix(ct, "application/pdf") ||
		strings.HasPrefix(ct, "application/octet-stream")
}
