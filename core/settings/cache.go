package settings

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/codeforge/ai-gateway/internal/utils"
)

const providersEndpoint = "/settings/providers"

type cacheEntry struct {
	settings  UserSettings
	fetchedAt time.Time
}

// Cache is a read-through, in-memory cache of per-user provider settings.
//
// Get never fails: any transport error or non-200 from the settings service
// degrades to all-disabled defaults, and failed lookups are not cached so the
// next call retries. Successful fetches are kept for the configured TTL, or
// for the process lifetime when the TTL is zero. Concurrent cold reads for
// the same user may each fetch remotely; the fetch is idempotent, so the
// duplicate work is accepted instead of adding request coalescing.
type Cache struct {
	baseURL string
	client  *http.Client
	ttl     time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewCache returns a cache reading from the settings service at baseURL.
// A zero ttl disables expiry.
func NewCache(baseURL string, client *http.Client, ttl time.Duration) *Cache {
	return &Cache{
		baseURL: baseURL,
		client:  client,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the provider settings for userID, fetching them from the
// settings service on a cache miss. It never returns an error.
func (c *Cache) Get(ctx context.Context, userID string) UserSettings {
	c.mu.RLock()
	entry, ok := c.entries[userID]
	c.mu.RUnlock()
	if ok && !c.expired(entry) {
		return entry.settings
	}

	_, fetched, err := utils.DoGetSync[UserSettings](
		ctx,
		c.client,
		c.baseURL+providersEndpoint,
		"",
		utils.HeaderOption{Key: "x-user-id", Value: userID},
	)
	if err != nil {
		slog.Warn("settings fetch failed, using defaults", "user_id", userID, "error", err)
		return Defaults()
	}

	c.mu.Lock()
	c.entries[userID] = cacheEntry{settings: *fetched, fetchedAt: time.Now()}
	c.mu.Unlock()

	return *fetched
}

// Invalidate drops the cached settings for userID, forcing the next Get to
// fetch remotely.
func (c *Cache) Invalidate(userID string) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
}

func (c *Cache) expired(entry cacheEntry) bool {
	return c.ttl > 0 && time.Since(entry.fetchedAt) > c.ttl
}
