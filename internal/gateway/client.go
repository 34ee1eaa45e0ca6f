package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	apihttp "shareit-backend/internal/api/http"
)

// Client forwards validated requests to the internal ShareIt server and
// returns the server's status code and body as-is.
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

func (c *Client) Get(ctx context.Context, path string, userID int64) (int, []byte, error) {
	return c.do(ctx, http.MethodGet, path, userID, nil)
}

func (c *Client) Post(ctx context.Context, path string, userID int64, body any) (int, []byte, error) {
	return c.do(ctx, http.MethodPost, path, userID, body)
}

func (c *Client) Patch(ctx context.Context, path string, userID int64, body any) (int, []byte, error) {
	return c.do(ctx, http.MethodPatch, path, userID, body)
}

func (c *Client) Delete(ctx context.Context, path string, userID int64) (int, []byte, error) {
	return c.do(ctx, http.MethodDelete, path, userID, nil)
}

// do performs the forwarded request. A zero userID means the route does not
// carry the identification header.
func (c *Client) do(ctx context.Context, method, path string, userID int64, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set(apihttp.UserIDHeader, strconv.FormatInt(userID, 10))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("server request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read server response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}
