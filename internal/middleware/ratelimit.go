package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is an in-memory fixed-window request counter keyed by client
// address. The count resets once the window has elapsed; exceeding it within
// the current window rejects the request before any handler runs.
type RateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*windowInfo
	limit        int
	window       time.Duration
	stopCleanup  chan struct{}
	shutdownOnce sync.Once

	now func() time.Time
}

type windowInfo struct {
	start    time.Time
	requests int
}

const cleanupInterval = 5 * time.Minute

// NewRateLimiter creates a limiter allowing limit requests per window per
// client address and starts its cleanup goroutine.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:     make(map[string]*windowInfo),
		limit:       limit,
		window:      window,
		stopCleanup: make(chan struct{}),
		now:         time.Now,
	}
	go rl.startCleanup()
	return rl
}

// Allow reports whether a request from the given address fits in the current
// window.
func (rl *RateLimiter) Allow(addr string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, exists := rl.clients[addr]

	// First request, or the previous window has elapsed.
	if !exists || now.Sub(w.start) >= rl.window {
		rl.clients[addr] = &windowInfo{start: now, requests: 1}
		return true
	}

	w.requests++
	return w.requests <= rl.limit
}

// Middleware rejects over-limit requests with 429 before the route handler.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}

// startCleanup runs periodic cleanup to remove stale client entries.
func (rl *RateLimiter) startCleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanupStaleEntries drops clients whose window has long elapsed.
func (rl *RateLimiter) cleanupStaleEntries() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-2 * rl.window)
	for addr, w := range rl.clients {
		if w.start.Before(cutoff) {
			delete(rl.clients, addr)
		}
	}
}

// ActiveClients returns the number of currently tracked addresses.
func (rl *RateLimiter) ActiveClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Stop shuts down the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.shutdownOnce.Do(func() {
		close(rl.stopCleanup)
	})
}
