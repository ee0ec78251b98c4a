package requests

import (
	"riftrewind/pkg/config"
	"sync"
	"time"
)

// Single riot rate limiting window.
type riotWindow struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full riot rate limit, containing all the constraints.
type RateLimiter struct {
	windows []*riotWindow
	mu      sync.Mutex
}

// Create a instance of the rate limiter from the configured windows.
func CreateRateLimiter() *RateLimiter {
	return &RateLimiter{
		windows: []*riotWindow{
			{
				limit:         config.Riot.Limits.Lower.Count,
				resetInterval: config.Riot.Limits.Lower.ResetInterval,
				lastReset:     time.Now(),
			},
			{
				limit:         config.Riot.Limits.Higher.Count,
				resetInterval: config.Riot.Limits.Higher.ResetInterval,
				lastReset:     time.Now(),
			},
		},
	}
}

// Reset any window whose interval has elapsed.
func (r *RateLimiter) resetCounts() {
	now := time.Now()
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if all windows still have room.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Increment the counter on every window.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// Wait blocks until a request slot is available on every window.
func (r *RateLimiter) Wait() {
	for {
		if r.tryAcquire() {
			return
		}
		r.waitWindowsReset()
	}
}

// Try to take a slot from all windows at once.
func (r *RateLimiter) tryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	if !r.checkLimits() {
		return false
	}

	r.incrementCounts()
	return true
}

// Sleep until the most distant exhausted window resets.
func (r *RateLimiter) waitWindowsReset() {
	r.mu.Lock()

	var waitTime time.Duration
	for _, window := range r.windows {
		if window.count < window.limit {
			continue
		}

		elapsed := time.Since(window.lastReset)
		waitTill := window.resetInterval - elapsed
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}

	r.mu.Unlock()

	time.Sleep(waitTime)
}
