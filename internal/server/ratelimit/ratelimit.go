// Package ratelimit limits page renders per client using token buckets.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Limit           int           // Requests per window
	Window          time.Duration // Window the limit applies to
	Burst           int           // Burst capacity (defaults to Limit if 0)
	CleanupInterval time.Duration
	IdleTTL         time.Duration // Clients idle for longer are forgotten
	Whitelist       map[string]bool
	Unlimited       map[string]bool // Paths that are never limited
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter manages one token bucket per client.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*client
	config  *Config
	now     func() time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	limiter := &Limiter{
		clients: make(map[string]*client),
		config:  config,
		now:     time.Now,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup()
	}

	return limiter
}

// Allow reports whether a request from clientID to path may proceed.
func (l *Limiter) Allow(clientID, path string) (bool, Info) {
	if !l.config.Enabled || l.config.Limit <= 0 || l.config.Whitelist[clientID] || l.config.Unlimited[path] {
		return true, Info{Allowed: true}
	}

	now := l.now()
	lim := l.clientLimiter(clientID, now)

	if lim.AllowN(now, 1) {
		return true, Info{
			Allowed:   true,
			Limit:     l.config.Limit,
			Remaining: max(0, int(lim.TokensAt(now))),
		}
	}

	reservation := lim.ReserveN(now, 1)
	retryAfter := reservation.DelayFrom(now)
	reservation.CancelAt(now)

	return false, Info{
		Allowed:    false,
		Limit:      l.config.Limit,
		Remaining:  0,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) clientLimiter(clientID string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[clientID]
	if !ok {
		burst := l.config.Burst
		if burst <= 0 {
			burst = l.config.Limit
		}
		every := l.config.Window / time.Duration(l.config.Limit)
		c = &client{limiter: rate.NewLimiter(rate.Every(every), burst)}
		l.clients[clientID] = c
	}
	c.lastSeen = now
	return c.limiter
}

// Clients returns the number of tracked clients.
func (l *Limiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.forgetIdle()
		case <-l.cleanupStop:
			return
		}
	}
}

// forgetIdle drops clients that have not been seen within IdleTTL.
func (l *Limiter) forgetIdle() {
	ttl := l.config.IdleTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	cutoff := l.now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()
	for id, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, id)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.cleanupTicker != nil {
			l.cleanupTicker.Stop()
		}
		if l.cleanupStop != nil {
			close(l.cleanupStop)
		}
	})
}
