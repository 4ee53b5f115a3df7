package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/smarthub-adapter/internal/constants"
	"golang.org/x/oauth2"
)

// StatusError is returned when the hub answers with a non-2xx status.
type StatusError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: hub returned status %d: %s", e.Method, e.URL, e.Status, strings.TrimSpace(e.Body))
}

// DecodeError is returned when a 2xx response body cannot be decoded.
type DecodeError struct {
	URL    string
	Status int
	Raw    []byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s (status %d): %s", e.URL, e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Client talks to the hub REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(logger *log.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get requests path and decodes the response body into out, if out is not nil.
func (c *Client) Get(ctx context.Context, path string, headers http.Header, out any) (int, error) {
	return c.makeRequest(ctx, c.httpClient, http.MethodGet, path, headers, nil, out)
}

// Post sends payload as json to path and decodes the response body into out, if out is not nil.
func (c *Client) Post(ctx context.Context, path string, headers http.Header, payload any, out any) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("encode request for %s: %w", path, err)
	}
	return c.makeRequest(ctx, c.httpClient, http.MethodPost, path, headers, body, out)
}

// Devices reads the raw device list. Records are decoded individually by ParseDevice.
func (c *Client) Devices(ctx context.Context, token *oauth2.Token) ([]json.RawMessage, error) {
	records := []json.RawMessage{}
	if _, err := c.makeRequest(ctx, c.authorized(ctx, token), http.MethodGet, constants.PathDevice, nil, nil, &records); err != nil {
		return nil, fmt.Errorf("error reading devices from hub: %w", err)
	}
	return records, nil
}

// Status probes the hub; any 2xx answer counts as alive whatever the body.
func (c *Client) Status(ctx context.Context, token *oauth2.Token) error {
	if _, err := c.makeRequest(ctx, c.authorized(ctx, token), http.MethodGet, constants.PathStatus, nil, nil, nil); err != nil {
		return fmt.Errorf("error reading hub status: %w", err)
	}
	return nil
}

// authorized wraps the client's transport so every request carries the bearer token.
func (c *Client) authorized(ctx context.Context, token *oauth2.Token) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	hc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	hc.Timeout = c.httpClient.Timeout
	return hc
}

func (c *Client) makeRequest(ctx context.Context, hc *http.Client, verb string, path string, headers http.Header, body []byte, out any) (int, error) {

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, verb, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	// set headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")
	for key, values := range headers {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}

	// make the request
	resp, err := hc.Do(req)
	if err != nil {
		c.logger.Error("Error making hub API call", "url", url, "err", err)
		return 0, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response from %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Error making hub API call", "url", url, "status", resp.Status)
		return resp.StatusCode, &StatusError{Method: verb, URL: url, Status: resp.StatusCode, Body: string(raw)}
	}

	c.logger.Debug("Hub API call succeeded", "method", verb, "url", url, "status", resp.StatusCode)

	if out == nil {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, &DecodeError{URL: url, Status: resp.StatusCode, Raw: raw, Err: err}
	}

	return resp.StatusCode, nil
}
