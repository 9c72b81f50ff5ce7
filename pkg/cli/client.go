package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"launchdash/internal/service/launch"
)

// APIError is returned for non-2xx responses from the dashboard API.
type APIError struct {
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (HTTP %d): %s", e.HTTPStatus, e.Message)
}

// Client is a thin HTTP client for the dashboard JSON API.
type Client struct {
	Host string
	HTTP *http.Client
}

// NewClient creates a client for the given host (e.g. http://localhost:8080).
func NewClient(host string) *Client {
	return &Client{
		Host: host,
		HTTP: &http.Client{Timeout: 15 * time.Second},
	}
}

// SitesResponse is the /v1/sites payload.
type SitesResponse struct {
	All   string   `json:"all"`
	Sites []string `json:"sites"`
}

// Sites fetches the distinct launch sites.
func (c *Client) Sites() (*SitesResponse, error) {
	var out SitesResponse
	if err := c.get("/v1/sites", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Distribution fetches the proportion breakdown for a site selection.
func (c *Client) Distribution(site string) (*launch.Distribution, error) {
	var out launch.Distribution
	if err := c.get("/v1/distribution", url.Values{"site": {site}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Correlation fetches the scatter projection for a site and payload range.
// min and max are omitted when negative, falling back to the server defaults.
func (c *Client) Correlation(site string, min, max float64) (*launch.Correlation, error) {
	params := url.Values{"site": {site}}
	if min >= 0 {
		params.Set("min", strconv.FormatFloat(min, 'f', -1, 64))
	}
	if max >= 0 {
		params.Set("max", strconv.FormatFloat(max, 'f', -1, 64))
	}
	var out launch.Correlation
	if err := c.get("/v1/correlation", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(path string, params url.Values, out interface{}) error {
	target := c.Host + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	resp, err := c.HTTP.Get(target)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{HTTPStatus: resp.StatusCode, Message: string(body)}
		var envelope struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &envelope) == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
