package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps calls to the inventory backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Health checks that the backend is reachable
func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/health", nil, nil)
}

// ListDevices returns all devices; when hardwareContains is non-empty only
// devices whose hardware description contains it (case-insensitively) are
// returned.
func (c *Client) ListDevices(ctx context.Context, hardwareContains string) ([]Device, error) {
	path := "/api/devices"
	if hardwareContains != "" {
		path += "?hardware_contains=" + url.QueryEscape(hardwareContains)
	}

	var out ApiResponse[[]Device]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	if out.Status != StatusSuccess {
		return nil, fmt.Errorf("failed to list devices: %s", out.Message)
	}

	return out.Data, nil
}

// GetDevice returns a single device by ID
func (c *Client) GetDevice(ctx context.Context, id uint) (*Device, error) {
	path := fmt.Sprintf("/api/devices/%d", id)

	var out ApiResponse[Device]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	if out.Status != StatusSuccess {
		return nil, fmt.Errorf("failed to get device %d: %s", id, out.Message)
	}

	return &out.Data, nil
}

// doJSON is a helper to perform JSON requests to the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	// Create the request
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// Perform the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// On error, read body and return error
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend '%s %s' failed: %d: %s", method, path, resp.StatusCode, string(b))
	}

	// If no output expected, return early
	if out == nil {
		return nil
	}

	// Decode the response body into the output struct
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}
