package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Limiter implements a simple in-memory sliding window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
	}
	go l.cleanup()
	return l
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		return l.max
	}

	remaining := l.max - c.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// cleanup periodically removes expired counters
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for key, c := range l.counters {
			if now.After(c.expiresAt) {
				delete(l.counters, key)
			}
		}
		l.mu.Unlock()
	}
}

// APILimiter bundles the per-concern limiters of the back office.
type APILimiter struct {
	login *Limiter
	order *Limiter
}

// NewAPILimiter creates the limiter set with default limits.
func NewAPILimiter() *APILimiter {
	return &APILimiter{
		login: NewLimiter(time.Minute, 10), // 10 login attempts per IP per minute
		order: NewLimiter(time.Hour, 1000), // 1000 order writes per IP per hour
	}
}

// CheckLogin verifies a login attempt from the given IP is allowed.
func (a *APILimiter) CheckLogin(ip string) error {
	if !a.login.Allow(ip) {
		return fmt.Errorf("too many login attempts, please try again later")
	}
	return nil
}

// CheckOrderWrite verifies an order mutation from the given IP is allowed.
func (a *APILimiter) CheckOrderWrite(ip string) error {
	if !a.order.Allow(ip) {
		return fmt.Errorf("too many order requests from this IP address, please try again later")
	}
	return nil
}
