// Package client is a small GraphQL-over-HTTP client for the API. It
// is used by crawler-side tooling that pushes route updates and crawl
// logs into the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to a single GraphQL endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a client for the given endpoint, typically
// "http://host:port/api/graphql".
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLError is a single error entry from the response.
type GraphQLError struct {
	Message    string                 `json:"message"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

func (e GraphQLError) Error() string {
	if code, ok := e.Extensions["code"].(string); ok {
		return fmt.Sprintf("%s: %s", code, e.Message)
	}
	return e.Message
}

// Code returns the taxonomy code from the error extensions, or "" when
// absent.
func (e GraphQLError) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Do executes one operation and unmarshals the data payload into out.
// Pass a nil out to discard the data. When the server reports execution
// errors the first one is returned.
func (c *Client) Do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, raw)
	}

	var parsed response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return parsed.Errors[0]
	}
	if out != nil && parsed.Data != nil {
		if err := json.Unmarshal(parsed.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
