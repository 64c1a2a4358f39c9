package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func testLimiter(t *testing.T, cfg *Config) (*Limiter, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	l := newLimiter(cfg, clock.Now)
	t.Cleanup(l.Stop)
	return l, clock
}

func TestTokenBucket(t *testing.T) {
	now := time.Now()
	bucket := newTokenBucket(10, 1.0, now)

	for i := 0; i < 10; i++ {
		assert.True(t, bucket.take(now), "request %d", i+1)
	}
	assert.False(t, bucket.take(now))
	assert.Equal(t, time.Second, bucket.nextToken())

	later := now.Add(1500 * time.Millisecond)
	assert.True(t, bucket.take(later))
	assert.False(t, bucket.take(later))
	assert.Equal(t, later.Add(9500*time.Millisecond), bucket.fullAt(later))
}

func TestLimiter_Allow(t *testing.T) {
	l, clock := testLimiter(t, &Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("127.0.0.1", "/test", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := l.Allow("127.0.0.1", "/test", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.InDelta(t, float64(6*time.Second), float64(info.RetryAfter), float64(time.Millisecond))
	assert.True(t, info.ResetTime.After(clock.Now()))

	clock.Advance(7 * time.Second)
	allowed, _ = l.Allow("127.0.0.1", "/test", "GET")
	assert.True(t, allowed, "a token refills every six seconds")

	allowed, _ = l.Allow("10.0.0.2", "/test", "GET")
	assert.True(t, allowed, "clients have separate buckets")
}

func TestLimiter_WhitelistBlacklistDisabled(t *testing.T) {
	l, _ := testLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})

	for i := 0; i < 50; i++ {
		allowed, info := l.Allow("127.0.0.1", "/test", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}

	allowed, _ := l.Allow("192.168.1.1", "/test", "GET")
	assert.False(t, allowed)

	disabled, _ := testLimiter(t, &Config{Enabled: false})
	for i := 0; i < 50; i++ {
		allowed, _ := disabled.Allow("10.0.0.1", "/analyze", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	l, _ := testLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/keywords/extract", Method: "POST", Limit: 30, Window: time.Hour, Burst: 3},
			{Path: "/health", Method: "GET", Limit: 0},
		},
	})

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("127.0.0.1", "/keywords/extract", "POST")
		require.True(t, allowed)
		assert.Equal(t, 30, info.Limit)
	}
	allowed, info := l.Allow("127.0.0.1", "/keywords/extract", "POST")
	assert.False(t, allowed, "burst exhausted")
	assert.InDelta(t, float64(2*time.Minute), float64(info.RetryAfter), float64(time.Millisecond))

	allowed, info = l.Allow("127.0.0.1", "/gaps/filter", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("127.0.0.1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := testLimiter(t, &Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Minute})

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := l.Allow("127.0.0.1", "/test", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_CleanupBuckets(t *testing.T) {
	l, clock := testLimiter(t, &Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute, IdleTTL: time.Hour})

	l.Allow("10.0.0.1", "/test", "GET")
	clock.Advance(45 * time.Minute)
	l.Allow("10.0.0.2", "/test", "GET")
	clock.Advance(30 * time.Minute)

	assert.Equal(t, 1, l.cleanupBuckets())
	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "10.0.0.2:GET:/test")
}

func TestLimiter_NilConfigAndDoubleStop(t *testing.T) {
	l := NewLimiter(nil)
	require.NotNil(t, l)
	assert.True(t, l.config.Enabled)
	l.Stop()
	l.Stop()
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/scans/", Method: "GET", Limit: 1},
		{Path: "/scans/export/", Method: "GET", Limit: 2},
		{Path: "/analyze", Method: "POST", Limit: 3},
	}

	tests := []struct {
		path, method string
		expected     int
	}{
		{"/analyze", "POST", 3},
		{"/analyze", "GET", 0},
		{"/scans/123", "GET", 1},
		{"/scans/export/csv", "GET", 2},
		{"/unknown", "GET", 0},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.expected == 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got.Limit)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")
	t.Setenv("RATE_LIMIT_EXTRACT_LIMIT", "7")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
	assert.True(t, cfg.Whitelist["10.0.0.2"])
	assert.Empty(t, cfg.Blacklist)

	ec := MatchEndpoint("/keywords/extract", "POST", cfg.EndpointConfigs)
	require.NotNil(t, ec)
	assert.Equal(t, 7, ec.Limit)

	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
