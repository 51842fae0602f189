package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/goliatone/go-beiform/pkg/payload"
)

// DefaultBaseURL is the service root used when none is configured.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// DefaultTimeout bounds a single outbound call. Report rendering on the
// service side is slow.
const DefaultTimeout = 120 * time.Second

// Endpoint paths relative to the base URL.
const (
	ComputePath         = "official/compute"
	ReportPath          = "official/report"
	ReportFromExcelPath = "official/report-from-excel"
	VersionPath         = "official/version"
)

const (
	instrumentationName  = "github.com/goliatone/go-beiform/pkg/service"
	maxResponseBodyBytes = 64 << 20
)

// Client calls the external service. It is safe for concurrent use.
type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
	tracer  trace.Tracer
	logger  *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-call timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithTracerProvider sets the provider spans are created from. The global
// provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// WithLogger attaches a logger for request summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a Client rooted at baseURL. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := ParseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		base:    base,
		http:    &http.Client{},
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.tracer == nil {
		c.tracer = otel.GetTracerProvider().Tracer(instrumentationName)
	}
	return c, nil
}

// ParseBaseURL validates a service root.
func ParseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrBaseURL, raw)
	}
	return u, nil
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string { return c.base.String() }

func (c *Client) endpoint(rel string) string {
	u := *c.base
	u.Path = path.Join("/", c.base.Path, rel)
	return u.String()
}

// Compute posts p and decodes the compute result. When the service rejects
// the input the decoded result is returned together with an *APIError
// carrying its messages.
func (c *Client) Compute(ctx context.Context, p *payload.Payload) (*ComputeResult, error) {
	if p == nil {
		return nil, fmt.Errorf("service: compute: %w", ErrNoPayload)
	}
	body, err := payload.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("service: compute: %w", err)
	}
	data, status, _, err := c.do(ctx, "compute", http.MethodPost, ComputePath, "application/json", body)
	if err != nil {
		return nil, err
	}
	var result ComputeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("service: compute: decode response: %w", err)
	}
	if result.Failed() {
		return &result, &APIError{Status: status, Detail: result.ErrorMessage()}
	}
	return &result, nil
}

// Report posts p and returns the rendered PDF.
func (c *Client) Report(ctx context.Context, p *payload.Payload) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("service: report: %w", ErrNoPayload)
	}
	body, err := payload.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("service: report: %w", err)
	}
	data, status, contentType, err := c.do(ctx, "report", http.MethodPost, ReportPath, "application/json", body)
	if err != nil {
		return nil, err
	}
	return extractPDF(status, contentType, data)
}

// ReportFromWorkbook uploads an input workbook as multipart form data and
// returns the rendered PDF. Original small-model workbooks are refused
// before any request is made.
func (c *Client) ReportFromWorkbook(ctx context.Context, filename string, workbook []byte) ([]byte, error) {
	if len(workbook) == 0 {
		return nil, ErrEmptyWorkbook
	}
	if IsSmallModelWorkbook(workbook) {
		return nil, ErrSmallModelWorkbook
	}
	if strings.TrimSpace(filename) == "" {
		filename = defaultWorkbookName
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(fileHeader(filename))
	if err != nil {
		return nil, fmt.Errorf("service: report from workbook: %w", err)
	}
	if _, err := part.Write(workbook); err != nil {
		return nil, fmt.Errorf("service: report from workbook: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("service: report from workbook: %w", err)
	}

	data, status, contentType, err := c.do(ctx, "report-from-excel", http.MethodPost, ReportFromExcelPath, mw.FormDataContentType(), buf.Bytes())
	if err != nil {
		return nil, err
	}
	return extractPDF(status, contentType, data)
}

// Version returns the service's version document.
func (c *Client) Version(ctx context.Context) (map[string]any, error) {
	data, _, _, err := c.do(ctx, "version", http.MethodGet, VersionPath, "", nil)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("service: version: decode response: %w", err)
	}
	return out, nil
}

// do performs one traced request and returns the body of a 2xx answer.
// Other statuses come back as *APIError.
func (c *Client) do(ctx context.Context, op, method, rel, contentType string, body []byte) ([]byte, int, string, error) {
	target := c.endpoint(rel)
	ctx, span := c.tracer.Start(ctx, "beiform.service."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", target),
			attribute.Int("http.request.body.size", len(body)),
		),
	)
	defer span.End()

	reqCtx := ctx
	var cancel context.CancelFunc
	if c.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, target, reader)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, "", fmt.Errorf("service: %s: %w", op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json, application/pdf")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		c.logger.Warn("service request failed", "op", op, "url", target, "error", err)
		return nil, 0, "", fmt.Errorf("service: %s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, resp.StatusCode, "", fmt.Errorf("service: %s: read response: %w", op, err)
	}
	span.SetAttributes(
		attribute.Int("http.response.status_code", resp.StatusCode),
		attribute.Int("http.response.body.size", len(data)),
	)
	c.logger.Debug("service request", "op", op, "status", resp.StatusCode, "bytes", len(data), "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeAPIError(resp.StatusCode, data)
		span.SetStatus(codes.Error, apiErr.Error())
		return nil, resp.StatusCode, "", apiErr
	}
	return data, resp.StatusCode, resp.Header.Get("Content-Type"), nil
}

// extractPDF returns data when it is a PDF. JSON bodies are treated as error
// payloads and their messages surfaced as an *APIError.
func extractPDF(status int, contentType string, data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return data, nil
	}
	trimmed := bytes.TrimSpace(data)
	if strings.Contains(contentType, "application/json") || bytes.HasPrefix(trimmed, []byte("{")) {
		var generic map[string]any
		if err := json.Unmarshal(trimmed, &generic); err == nil {
			return nil, &APIError{Status: status, Detail: ErrorMessage(generic)}
		}
	}
	return nil, ErrNotPDF
}
