// Package contacts fetches a short contact list from an external
// directory service, with in-memory caching so the upstream is not hit
// on every dashboard load.
package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"finboard/internal/cache"
)

// MaxLimit caps how many contacts a single request may ask for.
const MaxLimit = 10

// Contact mirrors the upstream user record, trimmed to the fields the
// dashboard shows.
type Contact struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Company Company `json:"company"`
}

type Company struct {
	Name string `json:"name"`
}

// Client fetches contacts over HTTP and caches results per limit.
type Client struct {
	url    string
	client *http.Client
	cache  *cache.LRUCache[[]Contact]
}

// NewClient builds a client for the given upstream URL. The cache
// holds one entry per requested limit and expires after ttl.
func NewClient(url string, timeout, ttl time.Duration) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		cache:  cache.NewLRUCache[[]Contact](MaxLimit, ttl),
	}
}

// Cache exposes the underlying cache for cleanup registration.
func (c *Client) Cache() cache.Cleaner {
	return c.cache
}

// Fetch returns at most limit contacts. Limits above MaxLimit are
// clamped, zero and negative limits return an empty slice.
func (c *Client) Fetch(ctx context.Context, limit int) ([]Contact, error) {
	if limit <= 0 {
		return []Contact{}, nil
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	key := fmt.Sprintf("limit-%d", limit)
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building contacts request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching contacts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("contacts upstream returned %d", resp.StatusCode)
	}

	var all []Contact
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		return nil, fmt.Errorf("decoding contacts: %w", err)
	}

	if len(all) > limit {
		all = all[:limit]
	}
	c.cache.Set(key, all)
	return all, nil
}
