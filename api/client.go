package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/publicsuffix"

	"github.com/louisbranch/retroboard/apperrors"
)

const tracerName = "github.com/louisbranch/retroboard/api"

// Client talks to the relying-party HTTP API.
//
// The session cookie is http-only and never readable from the client; it
// travels in the cookie jar and the server's answers are authoritative for
// session validity.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tracer     trace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. The provided client should
// carry a cookie jar, otherwise the session cookie is lost between requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a client for the given base URL, e.g. "https://board.example.com/api".
func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	client := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Jar: jar},
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// endpoint resolves a path relative to the base URL.
func (c *Client) endpoint(path string) string {
	return c.baseURL.String() + path
}

// do sends one JSON request and hands the response to handle. Transport
// failures wrap under CodeTransport with the cause retained for logging.
func (c *Client) do(ctx context.Context, op, method, path string, body any, handle func(*http.Response) error) error {
	ctx, span := c.tracer.Start(ctx, "api."+op)
	defer span.End()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		wrapped := apperrors.Wrap(apperrors.CodeTransport, fmt.Sprintf("unable to %s", op), err)
		span.RecordError(wrapped)
		return wrapped
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if err := handle(resp); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// rejected maps a non-success response status onto the error taxonomy.
func rejected(op string, status int) error {
	code := apperrors.CodeRejected
	if status == http.StatusNotFound {
		code = apperrors.CodeNotFound
	}
	return apperrors.WithMetadata(code,
		fmt.Sprintf("%s request resulted in response status %d", op, status),
		map[string]string{"status": strconv.Itoa(status)},
	)
}

func decodeJSON(resp *http.Response, op string, target any) error {
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return apperrors.Wrap(apperrors.CodeRejected, fmt.Sprintf("decode %s response", op), err)
	}
	return nil
}
