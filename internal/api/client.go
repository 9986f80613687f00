package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TokenSource yields the bearer credential to attach to outgoing requests.
// An empty string means no credential, and no header is sent.
type TokenSource interface {
	Token() string
}

// Client talks to the commerce backend. It owns the base URL, the request
// timeout, a circuit breaker around the transport, and the round-tripper
// that attaches the bearer credential and reports 401 rejections.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	transport  *authTransport
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	transport := &authTransport{
		base: otelhttp.NewTransport(http.DefaultTransport),
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		breaker: gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
			Name: "backend",
		}),
		transport: transport,
	}
}

// SetTokenSource wires the session store in after construction; the store
// itself needs the client to sign in, so the two cannot be built in one
// shot.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.transport.tokens = tokens
}

// SetUnauthorizedHook registers the reaction to a 401 on an authenticated
// request. The hook does not fire for anonymous requests, so a failed
// login does not reset anything.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.transport.onUnauthorized = fn
}

// authTransport is the Go rendition of the web client's request/response
// interceptor pair.
type authTransport struct {
	base           http.RoundTripper
	tokens         TokenSource
	onUnauthorized func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var token string
	if t.tokens != nil {
		token = t.tokens.Token()
	}
	if token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && token != "" && t.onUnauthorized != nil {
		t.onUnauthorized()
	}
	return resp, nil
}

// do issues a request and decodes the JSON response into out (when out is
// non-nil). Non-2xx responses become *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" && apiErr.Code == "" {
		apiErr = &Error{}
	}
	if apiErr.Status == 0 {
		apiErr.Status = resp.StatusCode
	}
	if apiErr.Message == "" {
		apiErr.Message = fallbackMessage(resp.StatusCode)
	}
	return apiErr
}
