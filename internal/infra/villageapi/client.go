package villageapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"butuhkidul/internal/observability/metrics"
	"butuhkidul/internal/observability/tracing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// maxErrorBodySize caps how much of an error response is read for parsing.
const maxErrorBodySize = 64 * 1024

// RequestOptions customizes a single call to Client.Do.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Headers are merged over the default JSON headers; caller values win.
	Headers map[string]string
	// Body is sent as-is.
	Body io.Reader
	// Operation labels metrics and spans (e.g. "articles.list").
	// Defaults to the endpoint path without its query string.
	Operation string
}

// Client issues requests against the village API origin.
//
// Thread safety: Client is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Client. A nil httpClient gets a pooled transport built from
// cfg; a nil logger falls back to slog.Default().
func New(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = newHTTPClient(cfg)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		logger:     logger,
	}
}

// newHTTPClient builds the default transport. Only dial and TLS handshake
// are bounded here; the overall request timeout comes from cfg.Timeout.
func newHTTPClient(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         dialer.DialContext,
			ForceAttemptHTTP2:   true,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
		},
	}
}

// BaseURL returns the configured origin without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends a request to baseURL+endpoint and decodes a 2xx JSON body into out.
//
// A non-2xx response yields *APIError. The error body is parsed as a JSON
// object when possible and left empty otherwise. Transport and decoding
// failures are returned wrapped. Nothing is retried.
func (c *Client) Do(ctx context.Context, endpoint string, opts *RequestOptions, out any) error {
	if opts == nil {
		opts = &RequestOptions{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	path := endpoint
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	operation := opts.Operation
	if operation == "" {
		operation = path
	}

	ctx, span := tracing.GetTracer().Start(ctx, "upstream "+method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("upstream.operation", operation),
		),
	)
	defer span.End()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, opts.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return fmt.Errorf("build request %s: %w", endpoint, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(operation, "error", time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	metrics.RecordUpstreamRequest(operation, strconv.Itoa(resp.StatusCode), time.Since(start))
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			body = map[string]any{}
		}
		apiErr := newAPIError(resp.StatusCode, body)

		span.SetStatus(codes.Error, apiErr.Message)
		c.logger.DebugContext(ctx, "upstream returned error status",
			slog.String("operation", operation),
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message))
		return apiErr
	}

	c.logger.DebugContext(ctx, "upstream request completed",
		slog.String("operation", operation),
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode response")
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// get is the shorthand the resource modules use.
func (c *Client) get(ctx context.Context, operation, endpoint string, out any) error {
	return c.Do(ctx, endpoint, &RequestOptions{Operation: operation}, out)
}
