package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter(t *testing.T) {
	rl := NewFixedWindowLimiter(3, 50*time.Millisecond)

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("10.0.0.1")
		assert.True(t, allowed)
	}

	allowed, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Equal(t, 50*time.Millisecond, retryAfter)

	// another client has its own window
	allowed, _ = rl.Allow("10.0.0.2")
	assert.True(t, allowed)

	// window reset
	time.Sleep(80 * time.Millisecond)
	allowed, _ = rl.Allow("10.0.0.1")
	assert.True(t, allowed)
}
