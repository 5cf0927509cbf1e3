package ratelimiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Limiter interface {
	// Allow reports whether the client may proceed and, if not, how long it
	// should wait.
	Allow(key string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// TokenBucketLimiter gives every client a bucket that refills
// RequestsPerTimeFrame tokens per TimeFrame and holds at most that many.
// A client idle for a whole TimeFrame has a full bucket again, so Cleanup
// may forget it.
type TokenBucketLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	timeFrame time.Duration
	now       func() time.Time
}

func NewTokenBucketLimiter(requests int, timeFrame time.Duration) *TokenBucketLimiter {
	if requests < 1 {
		requests = 1
	}
	return &TokenBucketLimiter{
		clients:   make(map[string]*client),
		limit:     rate.Limit(float64(requests) / timeFrame.Seconds()),
		burst:     requests,
		timeFrame: timeFrame,
		now:       time.Now,
	}
}

func (l *TokenBucketLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = l.now()
	return c.limiter
}

func (l *TokenBucketLimiter) Allow(key string) (bool, time.Duration) {
	reservation := l.limiter(key).Reserve()
	delay := reservation.Delay()
	if delay == 0 {
		return true, 0
	}
	reservation.Cancel()
	return false, delay
}

// Cleanup drops clients not seen for at least one time frame and returns how
// many were removed.
func (l *TokenBucketLimiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.timeFrame)
	removed := 0
	for key, c := range l.clients {
		if !c.lastSeen.After(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Clients reports the number of tracked clients.
func (l *TokenBucketLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (l *TokenBucketLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}
