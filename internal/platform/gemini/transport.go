package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// Request is a transport-level HTTP request.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response is a transport-level HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport sends one request and returns its status and body. A non-2xx
// status is not an error at this level.
type Transport interface {
	Send(ctx context.Context, req Request) (Response, error)
}

// HTTPTransport implements Transport over net/http.
type HTTPTransport struct {
	client *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates a transport backed by a pooled HTTP client. A
// zero timeout leaves requests bounded only by their context.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout
	return &HTTPTransport{client: client}
}

// NewHTTPTransportWithClient wraps an existing client.
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	if client == nil {
		client = cleanhttp.DefaultClient()
	}
	return &HTTPTransport{client: client}
}

// Send performs the request. When the body cannot be read, the returned
// Response still carries the status code alongside the error.
func (t *HTTPTransport) Send(ctx context.Context, req Request) (Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header = req.Header.Clone()
	if httpReq.Header == nil {
		httpReq.Header = make(http.Header)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{StatusCode: resp.StatusCode}, fmt.Errorf("failed to read response body: %w", err)
	}

	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}
