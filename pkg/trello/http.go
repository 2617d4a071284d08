package trello

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BuildURL composes the absolute request URL for path. The key and token
// parameters always come first, followed by query encoded with
// url.Values.Encode. The path itself is not escaped.
func (c *Client) BuildURL(path string, query url.Values) string {
	var sb strings.Builder
	sb.WriteString(c.baseURL)
	if !strings.HasPrefix(path, "/") {
		sb.WriteByte('/')
	}
	sb.WriteString(path)

	sb.WriteString("?key=")
	sb.WriteString(url.QueryEscape(c.key))
	sb.WriteString("&token=")
	sb.WriteString(url.QueryEscape(c.token))

	if len(query) > 0 {
		sb.WriteByte('&')
		sb.WriteString(query.Encode())
	}
	return sb.String()
}

// Fetch performs one request and returns the decoded JSON response as-is.
//
// Accept: application/json is always set, replacing any caller value. A
// non-nil body is JSON-encoded and sent with Content-Type application/json;
// a nil body sends no body at all. Any status other than 200 yields a
// *ResourceUnavailableError.
func (c *Client) Fetch(ctx context.Context, method, path string, headers http.Header, query url.Values, body interface{}) (interface{}, error) {
	reqURL := c.BuildURL(path, query)

	var reader io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for name, values := range headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if c.logger != nil {
		c.logger.Printf("%s %s %d %v", method, req.URL.Path, resp.StatusCode, time.Since(start))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ResourceUnavailableError{URL: reqURL, StatusCode: resp.StatusCode}
	}

	var decoded interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return decoded, nil
}

// getJSON issues a GET without headers or body.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) (interface{}, error) {
	return c.Fetch(ctx, http.MethodGet, path, nil, query, nil)
}

// redactURL replaces the key and token query values so the URL can be
// printed.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	for _, name := range []string{"key", "token"} {
		if q.Has(name) {
			q.Set(name, "REDACTED")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
