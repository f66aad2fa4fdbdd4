package http

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// sweepInterval is the minimum time between passes that drop idle clients.
const sweepInterval = time.Minute

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client gets its own limiter so one busy client cannot starve others.
// Clients whose bucket has refilled completely are dropped periodically,
// so memory tracks recently active clients only.
type ClientLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	rps       float64
	burst     int
	lastSweep time.Time
}

// NewClientLimiter creates a new ClientLimiter allowing rps requests per
// second per client with the given burst.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

// Allow reports whether client may make a request now.
func (c *ClientLimiter) Allow(client string) bool {
	return c.AllowAt(client, time.Now())
}

// AllowAt reports whether client may make a request at now.
func (c *ClientLimiter) AllowAt(client string, now time.Time) bool {
	c.mu.Lock()
	if now.Sub(c.lastSweep) >= sweepInterval {
		c.sweep(now)
	}
	limiter, ok := c.limiters[client]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(c.rps), c.burst)
		c.limiters[client] = limiter
	}
	c.mu.Unlock()

	return limiter.AllowN(now, 1)
}

// Len returns the number of clients currently tracked.
func (c *ClientLimiter) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.limiters)
}

// sweep drops clients whose bucket is full at now. A full bucket behaves
// exactly like a fresh one. Callers must hold c.mu.
func (c *ClientLimiter) sweep(now time.Time) {
	for client, limiter := range c.limiters {
		if limiter.TokensAt(now) >= float64(c.burst) {
			delete(c.limiters, client)
		}
	}
	c.lastSweep = now
}
