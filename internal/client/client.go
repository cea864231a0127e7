// Package client is a typed HTTP client for the prompt matching API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/JaimeStill/promptmatch/internal/api"
)

const jsonContentType = "application/json"

// Client issues requests against a single service base URL.
type Client struct {
	base *url.URL
	http *http.Client
}

// New creates a Client for baseURL. A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: u, http: httpClient}, nil
}

// Response is a raw service response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode %d response: %w", r.Status, err)
	}
	return nil
}

// Outcome is the decoded body of a match response, success or failure.
type Outcome struct {
	Status  int               `json:"-"`
	Success bool              `json:"success"`
	Prompt  string            `json:"prompt,omitempty"`
	Error   string            `json:"error,omitempty"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Do sends a request with an optional body and reads the full response.
func (c *Client) Do(ctx context.Context, method, path, contentType string, body io.Reader) (*Response, error) {
	target := c.base.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", jsonContentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   data,
	}, nil
}

// Match posts fields as a JSON body to /match-prompt.
// Failure statuses are returned as an Outcome, not an error.
func (c *Client) Match(ctx context.Context, fields any) (*Outcome, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	return c.MatchRaw(ctx, jsonContentType, body)
}

// MatchRaw posts body unchanged to /match-prompt with the given content type.
func (c *Client) MatchRaw(ctx context.Context, contentType string, body []byte) (*Outcome, error) {
	resp, err := c.Do(ctx, http.MethodPost, "/match-prompt", contentType, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var out Outcome
	if err := resp.JSON(&out); err != nil {
		return nil, err
	}
	out.Status = resp.Status
	return &out, nil
}

// Health fetches the health check body.
func (c *Client) Health(ctx context.Context) (*api.Health, error) {
	var h api.Health
	if err := c.get(ctx, "/health", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Info fetches the capability document.
func (c *Client) Info(ctx context.Context) (*api.Info, error) {
	var info api.Info
	if err := c.get(ctx, "/", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}
	if resp.Status != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.Status)
	}
	return resp.JSON(v)
}
