package settings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func settingsServer(t *testing.T, fetches *atomic.Int64, settings UserSettings) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		if r.URL.Path != "/settings/providers" {
			t.Errorf("expected path /settings/providers, got %s", r.URL.Path)
		}
		if r.Header.Get("x-user-id") == "" {
			t.Error("expected x-user-id header on settings fetch")
		}
		json.NewEncoder(w).Encode(settings)
	}))
}

// TestCacheGet_FetchAndCache verifies that a cold read fetches from the
// settings service and subsequent reads are served from the cache.
func TestCacheGet_FetchAndCache(t *testing.T) {
	var fetches atomic.Int64
	server := settingsServer(t, &fetches, UserSettings{
		OpenAI: ProviderConfig{APIKey: "sk-test", Enabled: true},
	})
	defer server.Close()

	cache := NewCache(server.URL, server.Client(), 0)

	got := cache.Get(context.Background(), "user-1")
	if !got.OpenAI.Enabled || got.OpenAI.APIKey != "sk-test" {
		t.Errorf("unexpected settings on first read: %+v", got)
	}

	cache.Get(context.Background(), "user-1")
	cache.Get(context.Background(), "user-1")

	if n := fetches.Load(); n != 1 {
		t.Errorf("expected 1 remote fetch, got %d", n)
	}
}

// TestCacheGet_PerUserEntries verifies that different users get separate
// cache entries.
func TestCacheGet_PerUserEntries(t *testing.T) {
	var fetches atomic.Int64
	server := settingsServer(t, &fetches, UserSettings{})
	defer server.Close()

	cache := NewCache(server.URL, server.Client(), 0)
	cache.Get(context.Background(), "user-1")
	cache.Get(context.Background(), "user-2")

	if n := fetches.Load(); n != 2 {
		t.Errorf("expected 2 remote fetches for 2 users, got %d", n)
	}
}

// TestCacheGet_DefaultsOnError verifies that transport errors and non-200
// responses degrade to all-disabled defaults instead of failing, and that
// the failure is not cached so the next read retries.
func TestCacheGet_DefaultsOnError(t *testing.T) {
	t.Run("non-200 response", func(t *testing.T) {
		var fetches atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fetches.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		cache := NewCache(server.URL, server.Client(), 0)

		got := cache.Get(context.Background(), "user-1")
		if got != Defaults() {
			t.Errorf("expected defaults on error, got %+v", got)
		}

		cache.Get(context.Background(), "user-1")
		if n := fetches.Load(); n != 2 {
			t.Errorf("expected failed lookups not to be cached, got %d fetches", n)
		}
	})

	t.Run("unreachable service", func(t *testing.T) {
		cache := NewCache("http://127.0.0.1:1", &http.Client{Timeout: 100 * time.Millisecond}, 0)

		got := cache.Get(context.Background(), "user-1")
		if got != Defaults() {
			t.Errorf("expected defaults on transport error, got %+v", got)
		}
	})
}

// TestCacheGet_TTLExpiry verifies that entries older than the TTL are
// refetched.
func TestCacheGet_TTLExpiry(t *testing.T) {
	var fetches atomic.Int64
	server := settingsServer(t, &fetches, UserSettings{})
	defer server.Close()

	cache := NewCache(server.URL, server.Client(), 10*time.Millisecond)

	cache.Get(context.Background(), "user-1")
	time.Sleep(20 * time.Millisecond)
	cache.Get(context.Background(), "user-1")

	if n := fetches.Load(); n != 2 {
		t.Errorf("expected expired entry to refetch, got %d fetches", n)
	}
}

// TestCacheInvalidate verifies that invalidation forces the next read to
// fetch remotely.
func TestCacheInvalidate(t *testing.T) {
	var fetches atomic.Int64
	server := settingsServer(t, &fetches, UserSettings{})
	defer server.Close()

	cache := NewCache(server.URL, server.Client(), 0)

	cache.Get(context.Background(), "user-1")
	cache.Invalidate("user-1")
	cache.Get(context.Background(), "user-1")

	if n := fetches.Load(); n != 2 {
		t.Errorf("expected refetch after invalidation, got %d fetches", n)
	}
}

// TestUserSettingsFor verifies the per-provider lookup, including the
// disabled zero entry for unknown names.
func TestUserSettingsFor(t *testing.T) {
	s := UserSettings{
		OpenAI:    ProviderConfig{APIKey: "a", Enabled: true},
		Anthropic: ProviderConfig{APIKey: "b"},
		GitHub:    ProviderConfig{APIKey: "c", Enabled: true},
	}

	if got := s.For("openai"); got.APIKey != "a" || !got.Enabled {
		t.Errorf("For(openai) = %+v", got)
	}
	if got := s.For("anthropic"); got.APIKey != "b" || got.Enabled {
		t.Errorf("For(anthropic) = %+v", got)
	}
	if got := s.For("github"); got.APIKey != "c" {
		t.Errorf("For(github) = %+v", got)
	}
	if got := s.For("unknown"); got != (ProviderConfig{}) {
		t.Errorf("For(unknown) = %+v, want zero entry", got)
	}
}
