// Package ceclient is the outbound gateway to the Cheat Engine REST API.
// Every logical operation maps to exactly one HTTP call; all failure modes
// collapse into a uniform Result so tool-level callers share one failure
// contract regardless of endpoint.
package ceclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	// APIBasePath is the fixed namespace prefix for every endpoint.
	APIBasePath = "/api/cheatengine"

	// DefaultTimeout covers long-running synchronous operations such as
	// full-memory scans, which block upstream until complete.
	DefaultTimeout = 600 * time.Second
)

// Result is the normalized outcome of one gateway call. Exactly one of a
// trustworthy Data payload or a non-empty Error is meaningful at a time.
type Result struct {
	Success bool
	Error   string
	Data    map[string]any
}

// Client issues requests against a single Cheat Engine instance. It holds
// no per-call state and is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Logger
	debug   bool
}

// New creates a gateway for the given base URL ("http://host:port").
// A zero timeout falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger *log.Logger, debug bool) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
		debug:   debug,
	}
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call performs one request against the named endpoint. GET requests never
// carry a body; POST requests with a nil payload send none. The method
// never returns a Go error: transport failures, non-2xx statuses, and
// undecodable bodies all come back as a Result with Success=false and a
// cause in Error. No retries — several upstream operations (writes,
// process-open) are not idempotent.
func (c *Client) Call(ctx context.Context, endpoint, method string, payload map[string]any) Result {
	url := c.baseURL + APIBasePath + "/" + strings.TrimLeft(endpoint, "/")

	var body io.Reader
	if strings.EqualFold(method, http.MethodPost) && payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return failure(fmt.Sprintf("Request failed: encode payload: %v", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), url, body)
	if err != nil {
		return failure(fmt.Sprintf("Request failed: %v", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.debug && c.logger != nil {
		c.logger.Printf("[Gateway] %s %s", req.Method, url)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return failure(fmt.Sprintf("Request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return failure(fmt.Sprintf("HTTP error: %d", resp.StatusCode))
	}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return failure(fmt.Sprintf("Invalid response: %v", err))
	}

	return Result{
		Success: successFlag(decoded),
		Error:   errorText(decoded),
		Data:    decoded,
	}
}

func failure(msg string) Result {
	return Result{
		Success: false,
		Error:   msg,
		Data:    map[string]any{"success": false, "error": msg},
	}
}

// successFlag reads the upstream success flag at face value. The Cheat
// Engine API mixes key casings across endpoints, so both are accepted.
// A body with no flag at all (e.g. the API info document) counts as
// success — the 2xx status already vouched for it.
func successFlag(body map[string]any) bool {
	for _, key := range []string{"Success", "success"} {
		if v, ok := body[key]; ok {
			b, isBool := v.(bool)
			return isBool && b
		}
	}
	return true
}

func errorText(body map[string]any) string {
	for _, key := range []string{"Error", "error"} {
		if v, ok := body[key]; ok {
			if s, isStr := v.(string); isStr {
				return s
			}
		}
	}
	return ""
}
