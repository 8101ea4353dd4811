// Package apiclient is the typed Go client for the CareerForge API. It binds
// the same contract registry the server routes from, so request and response
// shapes cannot drift between the two sides.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"careerforge-backend/internal/contract"
)

const defaultTimeout = 30 * time.Second

// Client issues authenticated requests against a CareerForge server.
// Successful GET responses are cached by path; any mutation under the same
// collection prefix invalidates them.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	ops     *contract.Registry

	mu    sync.Mutex
	cache map[string][]byte
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		ops:     contract.Default(),
		cache:   map[string][]byte{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, e.g. after a refresh.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.cache = map[string][]byte{}
}

// RequestError is a non-2xx response from the server.
type RequestError struct {
	Status int
	Body   contract.APIError
}

func (e *RequestError) Error() string {
	if e.Body.Field != "" {
		return fmt.Sprintf("api: %d %s (field %s)", e.Status, e.Body.Message, e.Body.Field)
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.Body.Message)
}

// ValidationError means a response did not match the shape the contract
// declares for its status. It names the offending field.
type ValidationError struct {
	Op    string
	Field string
	Cause string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api: %s response invalid: field %s %s", e.Op, e.Field, e.Cause)
	}
	return fmt.Sprintf("api: %s response invalid: %s", e.Op, e.Cause)
}

// query runs a cached GET for op. A 404 reports found=false instead of an
// error so single-resource reads can treat absence as a normal outcome.
func (c *Client) query(ctx context.Context, opName string, params map[string]string, out any) (bool, error) {
	op := c.ops.MustGet(opName)
	path := contract.BuildPath(op.Path, params)

	if body, ok := c.cached(path); ok {
		return true, json.Unmarshal(body, out)
	}

	status, body, err := c.do(ctx, op.Method, path, nil)
	if err != nil {
		return false, err
	}
	if status == http.StatusNotFound {
		return false, nil
	}
	if status != http.StatusOK {
		return false, apiError(status, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, fmt.Errorf("api: decode %s response: %w", opName, err)
	}
	if err := checkResponse(op, status, out); err != nil {
		return false, err
	}

	c.store(path, body)
	return true, nil
}

// mutate validates in against op's input rule, sends the request and
// invalidates every cached path under the operation's collection.
func (c *Client) mutate(ctx context.Context, opName string, params map[string]string, in, out any) error {
	op := c.ops.MustGet(opName)

	if op.Input != nil && in != nil {
		if err := op.Input(in); err != nil {
			return err
		}
	}

	var payload io.Reader
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: encode %s input: %w", opName, err)
		}
		payload = bytes.NewReader(body)
	}

	path := contract.BuildPath(op.Path, params)
	status, body, err := c.do(ctx, op.Method, path, payload)
	if err != nil {
		return err
	}
	c.invalidate(collectionPrefix(op.Path))

	if status < 200 || status >= 300 {
		return apiError(status, body)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("api: decode %s response: %w", opName, err)
		}
		if err := checkResponse(op, status, out); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, data, nil
}

func (c *Client) cached(path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	body, ok := c.cache[path]
	return body, ok
}

func (c *Client) store(path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[path] = body
}

func (c *Client) invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for path := range c.cache {
		if strings.HasPrefix(path, prefix) {
			delete(c.cache, path)
		}
	}
}

// collectionPrefix trims the template at its first :param, so a mutation on
// /api/resumes/:id invalidates everything cached under /api/resumes.
func collectionPrefix(template string) string {
	if i := strings.Index(template, "/:"); i >= 0 {
		return template[:i]
	}
	return template
}

func apiError(status int, body []byte) error {
	var apiErr contract.APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return &RequestError{Status: status, Body: apiErr}
}

func checkResponse(op contract.Operation, status int, out any) error {
	rule, ok := op.Responses[status]
	if !ok || rule == nil {
		return nil
	}
	if err := rule(out); err != nil {
		var fe *contract.FieldError
		if errors.As(err, &fe) {
			return &ValidationError{Op: op.Name, Field: fe.Field, Cause: fe.Message}
		}
		return &ValidationError{Op: op.Name, Cause: err.Error()}
	}
	return nil
}
