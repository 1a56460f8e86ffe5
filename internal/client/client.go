// Package client provides an HTTP client for the stay-finder REST API.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/evcraddock/stay-finder/internal/search"
)

// Client is an HTTP client for the stay-finder API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListStays returns the stays visible under f, in catalog order.
func (c *Client) ListStays(f search.Filter) (*search.Result, error) {
	params := url.Values{}
	if f.Location != search.AnyLocation {
		params.Set("location", f.Location)
	}
	if f.MinGuests > 0 {
		params.Set("guests", strconv.Itoa(f.MinGuests))
	}

	path := "/api/stays"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var res search.Result
	if err := c.get(path, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Locations returns the distinct "City, Country" options.
func (c *Client) Locations() ([]string, error) {
	var locs []string
	if err := c.get("/api/locations", &locs); err != nil {
		return nil, err
	}
	return locs, nil
}

// Health checks that the server is up.
func (c *Client) Health() error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.get("/health", &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return fmt.Errorf("server status %q", resp.Status)
	}
	return nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// do executes an HTTP request and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
