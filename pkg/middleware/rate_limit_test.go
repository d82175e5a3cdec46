package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitKey_SameWindowSameKey(t *testing.T) {
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	first := rateLimitKey("203.0.113.7", base, time.Minute)
	second := rateLimitKey("203.0.113.7", base.Add(30*time.Second), time.Minute)

	assert.Equal(t, first, second)
}

func TestRateLimitKey_NewWindowNewKey(t *testing.T) {
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	first := rateLimitKey("203.0.113.7", base, time.Minute)
	second := rateLimitKey("203.0.113.7", base.Add(time.Minute), time.Minute)

	assert.NotEqual(t, first, second)
}

func TestRateLimitKey_SeparatesClients(t *testing.T) {
	now := time.Now()

	first := rateLimitKey("203.0.113.7", now, time.Minute)
	second := rateLimitKey("198.51.100.9", now, time.Minute)

	assert.NotEqual(t, first, second)
}
