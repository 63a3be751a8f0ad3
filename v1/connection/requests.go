package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Response is the outcome of a completed HTTP exchange with the server.
type Response struct {
	// StatusCode is the HTTP status the server answered with.
	StatusCode int

	// Body is the full response body.
	Body []byte

	// Elapsed is the wall-clock duration of the whole exchange.
	// The batch controller uses it for dynamic-batching calculations.
	Elapsed time.Duration
}

// DecodeJSON unmarshals the response body into v.
func (r *Response) DecodeJSON(v interface{}) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("connection: empty response body")
	}
	return json.Unmarshal(r.Body, v)
}

// Post sends a POST request with a JSON payload to the given path
// (relative to the versioned API root).
func (c *Connection) Post(ctx context.Context, path string, payload interface{}) (*Response, error) {
	return c.run(ctx, http.MethodPost, path, nil, payload)
}

// Put sends a PUT request with a JSON payload.
func (c *Connection) Put(ctx context.Context, path string, payload interface{}) (*Response, error) {
	return c.run(ctx, http.MethodPut, path, nil, payload)
}

// Patch sends a PATCH request with a JSON payload.
func (c *Connection) Patch(ctx context.Context, path string, payload interface{}) (*Response, error) {
	return c.run(ctx, http.MethodPatch, path, nil, payload)
}

// Get sends a GET request; params (may be nil) are encoded as the query string.
func (c *Connection) Get(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.run(ctx, http.MethodGet, path, params, nil)
}

// Delete sends a DELETE request with an optional JSON payload.
func (c *Connection) Delete(ctx context.Context, path string, payload interface{}) (*Response, error) {
	return c.run(ctx, http.MethodDelete, path, nil, payload)
}

// run performs a single HTTP exchange and reads the body fully.
// Transport failures come back wrapped in ErrConnection; status codes are
// passed through untouched for the caller to interpret.
func (c *Connection) run(ctx context.Context, method, path string, params url.Values, payload interface{}) (*Response, error) {
	fullURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("connection: encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	if c.tracer != nil {
		spanCtx, span := c.tracer.StartSpan(ctx, strings.ToLower(method)+" "+path)
		defer span.End()
		ctx = spanCtx
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("connection: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.AuthToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)

	c.observeOperation(strings.ToLower(method), path, elapsed, err)

	if err != nil {
		return nil, newConnectionError(method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newConnectionError(method, path, err)
	}

	c.log.Debug("request completed", nil, map[string]interface{}{
		"method":  method,
		"path":    path,
		"status":  resp.StatusCode,
		"elapsed": elapsed.String(),
	})

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       data,
		Elapsed:    elapsed,
	}, nil
}
