// Package http executes single logical calls against the BigCommerce API:
// it builds the request, retries transient failures, and classifies the
// outcome into the bigc error taxonomy.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fivetwenty-io/bigc/internal/constants"
	"github.com/fivetwenty-io/bigc/pkg/bigc"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/fivetwenty-io/bigc"

// Client performs requests relative to a base URL.
type Client struct {
	baseURL      string
	accessToken  string
	httpClient   *http.Client
	userAgent    string
	timeout      time.Duration
	getRetries   int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	logger       zerolog.Logger
	metrics      *bigc.Metrics
	tracer       trace.Tracer
	propagator   propagation.TextMapPropagator
}

// Request is one logical call. Path is relative to the base URL and must
// not carry a query string; query parameters go in Options.Params.
type Request struct {
	Method  string
	Path    string
	Body    any
	Options *bigc.RequestOptions
}

// Response is a successful (2xx) response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Attempts   int
}

// Empty reports whether the platform sent no body.
func (r *Response) Empty() bool {
	return len(r.Body) == 0
}

// NewClient creates a new HTTP client.
func NewClient(baseURL, accessToken string, opts ...Option) *Client {
	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/") + "/",
		accessToken: accessToken,
		httpClient:  cleanhttp.DefaultPooledClient(),
		userAgent:   constants.DefaultUserAgent,
		logger:      zerolog.Nop(),
		tracer:      otel.GetTracerProvider().Tracer(tracerName),
		propagator:  otel.GetTextMapPropagator(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// call is a validated request ready to be sent.
type call struct {
	method  string
	path    string
	url     string
	body    []byte
	headers map[string]string
	timeout time.Duration
	retries int
}

// Do executes a request. Transient failures (network errors, timeouts and
// 500/502/503/504 responses) are retried up to the resolved retry budget;
// when it runs out the last transient failure is returned. Any other non-2xx
// response is returned immediately as a *bigc.APIError. Precondition
// violations are reported before anything is sent.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()

	ctx, span := c.tracer.Start(ctx, "BigCommerce "+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("bigc.path", req.Path),
		),
	)
	defer span.End()

	prepared, err := c.prepare(req)
	if err != nil {
		c.finish(span, req, nil, 0, bigc.OutcomeInvalid, time.Since(start), err)

		return nil, err
	}

	resp, attempts, err := c.execute(ctx, prepared)
	c.finish(span, req, resp, attempts, bigc.Outcome(err), time.Since(start), err)

	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) prepare(req *Request) (*call, error) {
	if strings.ContainsAny(req.Path, "?#") {
		return nil, fmt.Errorf("%w: %q", bigc.ErrInvalidPath, req.Path)
	}

	opts := req.Options
	if opts == nil {
		opts = &bigc.RequestOptions{}
	}

	retries, err := c.resolveRetries(req.Method, opts.Retries)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	target := c.baseURL + strings.TrimPrefix(req.Path, "/")
	if query := encodeParams(opts.Params); query != "" {
		target += "?" + query
	}

	return &call{
		method:  req.Method,
		path:    req.Path,
		url:     target,
		body:    body,
		headers: opts.Headers,
		timeout: timeout,
		retries: retries,
	}, nil
}

// resolveRetries applies the retry defaults: an explicit value wins, GET
// falls back to the client default, everything else is not retried.
func (c *Client) resolveRetries(method string, explicit *int) (int, error) {
	retries := 0

	switch {
	case explicit != nil:
		retries = *explicit
	case method == http.MethodGet:
		retries = c.getRetries
	}

	if retries < 0 {
		return 0, fmt.Errorf("%w: %d", bigc.ErrNegativeRetries, retries)
	}

	if method == http.MethodPost && retries > 0 {
		return 0, fmt.Errorf("%w: retries=%d", bigc.ErrRetryNotAllowed, retries)
	}

	return retries, nil
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return b, nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		return data, nil
	}
}

func (c *Client) execute(ctx context.Context, prepared *call) (*Response, int, error) {
	attempts := 0

	retryClient := &retryablehttp.Client{
		HTTPClient: &http.Client{
			Transport:     c.httpClient.Transport,
			CheckRedirect: c.httpClient.CheckRedirect,
			Jar:           c.httpClient.Jar,
			Timeout:       prepared.timeout,
		},
		Logger:       retryLogger{logger: c.logger},
		RetryWaitMin: c.retryWaitMin,
		RetryWaitMax: c.retryWaitMax,
		RetryMax:     prepared.retries,
		RequestLogHook: func(_ retryablehttp.Logger, _ *http.Request, _ int) {
			attempts++
		},
		CheckRetry:   c.checkRetry(prepared, &attempts),
		Backoff:      backoff,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}

	var rawBody any
	if prepared.body != nil {
		rawBody = prepared.body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, prepared.method, prepared.url, rawBody)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(ctx, httpReq.Header, prepared.headers)
	httpReq.SetResponseHandler(bufferBody)

	resp, err := retryClient.Do(httpReq)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}

		return nil, attempts, transportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, attempts, transportError(ctx, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, attempts, bigc.NewResponseError(resp, body)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		Attempts:   attempts,
	}, attempts, nil
}

// bufferBody reads the whole body inside the attempt, so a timeout or reset
// while reading is retried like any other transport failure. The buffered
// bytes replace the body for the caller.
func bufferBody(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))

	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

// setHeaders applies caller headers first so the standard ones always win.
func (c *Client) setHeaders(ctx context.Context, header http.Header, extra map[string]string) {
	for key, value := range extra {
		header.Set(key, value)
	}

	header.Set(constants.HeaderAccept, constants.MediaTypeJSON)
	header.Set(constants.HeaderContentType, constants.MediaTypeJSON)
	header.Set(constants.HeaderAuthToken, c.accessToken)
	header.Set(constants.HeaderUserAgent, c.userAgent)

	c.propagator.Inject(ctx, propagation.HeaderCarrier(header))
}

func (c *Client) checkRetry(prepared *call, attempts *int) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}

		retry := err != nil || bigc.TransientStatus(resp.StatusCode)
		if retry && *attempts <= prepared.retries {
			event := c.logger.Warn().
				Str("method", prepared.method).
				Str("path", prepared.path).
				Int("attempt", *attempts)
			if err != nil {
				event = event.Err(err)
			} else {
				event = event.Int("status", resp.StatusCode)
			}

			event.Msg("transient failure, retrying")
		}

		return retry, nil
	}
}

// backoff ignores Retry-After so the pause always stays within the
// configured bounds.
func backoff(minWait, maxWait time.Duration, attemptNum int, _ *http.Response) time.Duration {
	return retryablehttp.DefaultBackoff(minWait, maxWait, attemptNum, nil)
}

// transportError classifies a failure that produced no usable response.
// Cancellation by the caller is returned as is.
func transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("request aborted: %w", ctxErr)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &bigc.APIError{Kind: bigc.ErrGatewayTimeout, Err: err}
	}

	return &bigc.APIError{Kind: bigc.ErrNetwork, Err: err}
}

func (c *Client) finish(
	span trace.Span,
	req *Request,
	resp *Response,
	attempts int,
	outcome string,
	elapsed time.Duration,
	err error,
) {
	c.metrics.ObserveRequest(req.Method, outcome, attempts, elapsed)

	span.SetAttributes(
		attribute.Int("bigc.attempts", attempts),
		attribute.String("bigc.outcome", outcome),
	)

	event := c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("attempts", attempts).
		Dur("duration", elapsed).
		Str("outcome", outcome)

	var apiErr *bigc.APIError

	switch {
	case resp != nil:
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
		event = event.Int("status", resp.StatusCode)
	case errors.As(err, &apiErr) && apiErr.StatusCode != 0:
		span.SetAttributes(attribute.Int("http.response.status_code", apiErr.StatusCode))
		event = event.Int("status", apiErr.StatusCode)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		event = event.Err(err)
	}

	event.Msg("request finished")
}
