package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wishlist-cli/internal/model"
)

// DefaultBaseURL points at the public wishlist backend. Override with
// --api / WISHLIST_API for self-hosted or test servers.
const DefaultBaseURL = "https://wishlist-tracker-backend-wlvx.onrender.com"

// Draft is the create request body. Price is parsed client-side before
// submission; the server fills in id (and usually name) on the way back.
type Draft struct {
	URL      string  `json:"url"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Patch is the update request body. It always carries all four editable
// fields; the server returns the full updated item.
type Patch struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	URL      string  `json:"url"`
	Category string  `json:"category"`
}

// StatusError is a non-2xx response from the server.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	b := strings.TrimSpace(e.Body)
	if b == "" {
		return fmt.Sprintf("server returned %d", e.Code)
	}
	if len(b) > 200 {
		b = b[:200] + "…"
	}
	return fmt.Sprintf("server returned %d: %s", e.Code, b)
}

// Client talks to the remote wishlist collection. The zero value is not
// usable; construct with New.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient is used by tests to inject an httptest client/server pair.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	c := New(baseURL)
	if hc != nil {
		c.http = hc
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// List fetches the full collection, preserving server order.
func (c *Client) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := c.do(ctx, http.MethodGet, "/api/items", nil, &items); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Create posts a draft and returns the server's item, including the assigned id.
func (c *Client) Create(ctx context.Context, d Draft) (model.Item, error) {
	var it model.Item
	if err := c.do(ctx, http.MethodPost, "/api/items", d, &it); err != nil {
		return model.Item{}, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

// Update patches an existing item by id and returns the updated representation.
func (c *Client) Update(ctx context.Context, id int64, p Patch) (model.Item, error) {
	var it model.Item
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/items/%d", id), p, &it); err != nil {
		return model.Item{}, fmt.Errorf("update item %d: %w", id, err)
	}
	return it, nil
}

// Delete removes an item by id. Any response body is ignored.
func (c *Client) Delete(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/items/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Keep a short body excerpt for diagnostics; callers mostly only
		// care that the request failed.
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &StatusError{Code: resp.StatusCode, Body: string(b)}
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
