package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrMissingFilter = errors.New("supabase: update and delete require at least one filter")

// Config holds the project settings for the REST endpoint.
type Config struct {
	URL     string
	APIKey  string
	Schema  string
	Timeout time.Duration
}

// Client is a minimal PostgREST client for a Supabase project.
type Client struct {
	baseURL    string
	apiKey     string
	schema     string
	httpClient *http.Client
}

// NewClient creates a new Supabase REST client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/") + "/rest/v1",
		apiKey:     cfg.APIKey,
		schema:     cfg.Schema,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Select decodes the rows of table matching q into out (a pointer to a slice).
func (c *Client) Select(ctx context.Context, table string, q *Query, out any) error {
	return c.do(ctx, http.MethodGet, table, q.values(true).Encode(), nil, out)
}

// Insert inserts row (a struct or slice of structs) and decodes the stored
// representation into out when out is non-nil.
func (c *Client) Insert(ctx context.Context, table string, row any, out any) error {
	return c.do(ctx, http.MethodPost, table, "", row, out)
}

// Update patches the rows matching q with patch.
func (c *Client) Update(ctx context.Context, table string, q *Query, patch any, out any) error {
	vals := q.values(false)
	if len(vals) == 0 {
		return ErrMissingFilter
	}
	return c.do(ctx, http.MethodPatch, table, vals.Encode(), patch, out)
}

// Delete removes the rows matching q.
func (c *Client) Delete(ctx context.Context, table string, q *Query) error {
	vals := q.values(false)
	if len(vals) == 0 {
		return ErrMissingFilter
	}
	return c.do(ctx, http.MethodDelete, table, vals.Encode(), nil, nil)
}

func (c *Client) do(ctx context.Context, method, table, rawQuery string, body any, out any) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, table)
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("apikey", c.apiKey)
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if out != nil && method != http.MethodGet {
		httpReq.Header.Set("Prefer", "return=representation")
	}
	if c.schema != "" {
		if method == http.MethodGet {
			httpReq.Header.Set("Accept-Profile", c.schema)
		} else {
			httpReq.Header.Set("Content-Profile", c.schema)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call supabase API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
