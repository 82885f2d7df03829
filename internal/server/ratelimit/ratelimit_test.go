package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(configs []EndpointConfig) *Limiter {
	return NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		EndpointConfigs: configs,
	})
}

func TestLimiterBurstExhaustion(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/verify", Method: "POST", Limit: 30, Window: time.Minute, Burst: 3},
	})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("client-a", "/verify", "POST")
		assert.True(t, allowed, "request %d within burst", i)
	}

	allowed, info := limiter.Allow("client-a", "/verify", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 30, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterIsolatesClients(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/verify", Method: "POST", Limit: 30, Window: time.Minute, Burst: 1},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-a", "/verify", "POST")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("client-a", "/verify", "POST")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("client-b", "/verify", "POST")
	assert.True(t, allowed, "other clients keep their own bucket")
}

func TestLimiterDisabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client-a", "/verify", "POST")
		assert.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	cfg := &Config{
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/auth/token", Method: "POST", Limit: 10, Window: time.Minute},
			{Path: "/verifications/", Method: "GET", Limit: 50, Window: time.Minute},
		},
	}

	t.Run("health is unlimited", func(t *testing.T) {
		ec := cfg.match("/health", "GET")
		assert.Equal(t, 0, ec.Limit)
	})

	t.Run("exact match", func(t *testing.T) {
		ec := cfg.match("/auth/token", "POST")
		assert.Equal(t, 10, ec.Limit)
	})

	t.Run("prefix match", func(t *testing.T) {
		ec := cfg.match("/verifications/user-1", "GET")
		assert.Equal(t, 50, ec.Limit)
	})

	t.Run("method mismatch falls through to default", func(t *testing.T) {
		ec := cfg.match("/auth/token", "GET")
		assert.Equal(t, 100, ec.Limit)
	})
}
