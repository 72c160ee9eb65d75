// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package counter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/folio/auth"
	"github.com/danielhkuo/folio/nav"
)

// Placeholder is shown when the count is unknown.
const Placeholder = "—"

// ClientIDKey is the storage entry holding the client id.
const ClientIDKey = "client_id"

// HomeKey is the counter key of the site root.
const HomeKey = "home"

type Client struct {
	baseURL string
	http    *http.Client
	storage nav.Storage
}

// New returns a client for the server at baseURL. storage may be nil, in
// which case every call uses a fresh client id.
func New(baseURL string, storage nav.Storage) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		storage: storage,
	}
}

// WithHTTPClient replaces the HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// KeyForPath maps a page path to its counter key.
func KeyForPath(path string) string {
	if path == "" || path == "/" {
		return HomeKey
	}
	return path
}

// ClientID returns the persisted client id, creating one on first use.
// When storage fails the id is not persisted.
func (c *Client) ClientID() string {
	if c.storage == nil {
		return auth.NewClientID()
	}
	if stored, err := c.storage.Get(ClientIDKey); err == nil && stored != "" {
		return stored
	}

	id := auth.NewClientID()
	if err := c.storage.Set(ClientIDKey, id); err != nil {
		slog.Debug("client id not persisted", "error", err)
	}
	return id
}

type hitResponse struct {
	UniqueForKey *int64 `json:"uniqueForKey"`
	UniqueAll    *int64 `json:"uniqueAll"`
}

// Unique records a visit of path and returns the unique visitor count for
// it, falling back to the site-wide count.
func (c *Client) Unique(ctx context.Context, path string) (int64, error) {
	q := url.Values{}
	q.Set("key", KeyForPath(path))
	q.Set("client_id", c.ClientID())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/hit?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build hit request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("hit request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("hit request failed: status %d", resp.StatusCode)
	}

	var body hitResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode hit response: %w", err)
	}

	switch {
	case body.UniqueForKey != nil:
		return *body.UniqueForKey, nil
	case body.UniqueAll != nil:
		return *body.UniqueAll, nil
	}
	return 0, nil
}

// Display returns the counter text for path. Errors never escape; they
// turn into the placeholder.
func (c *Client) Display(ctx context.Context, path string) string {
	n, err := c.Unique(ctx, path)
	if err != nil {
		slog.Warn("visit counter unavailable", "path", path, "error", err)
		return "Unique: " + Placeholder
	}
	return fmt.Sprintf("Unique: %d", n)
}
