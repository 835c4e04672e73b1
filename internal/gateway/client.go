package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"shareit/internal/handler"
)

// Client forwards validated requests to the server layer, preserving the
// caller identity header, query string and body.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Response is the upstream status and raw JSON body, relayed verbatim.
type Response struct {
	Status int
	Body   []byte
}

func (c *Client) Get(ctx context.Context, path string, userID uint, query url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, userID, query, nil)
}

func (c *Client) Post(ctx context.Context, path string, userID uint, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, userID, nil, body)
}

func (c *Client) Patch(ctx context.Context, path string, userID uint, query url.Values, body any) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, userID, query, body)
}

func (c *Client) Delete(ctx context.Context, path string, userID uint) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, userID, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, userID uint, query url.Values, body any) (*Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		req.Header.Set(handler.HeaderUserID, strconv.FormatUint(uint64(userID), 10))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forward %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return &Response{Status: resp.StatusCode, Body: respBody}, nil
}
