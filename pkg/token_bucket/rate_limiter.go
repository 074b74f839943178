package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// Clock отдаёт текущее время; в тестах подменяется.
type Clock func() time.Time

// TokenBucket хранит дробный остаток токенов, поэтому медленное пополнение
// (меньше токена за интервал между запросами) не теряется.
type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64 // токенов в секунду
	lastRefill time.Time
	now        Clock
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return NewTokenBucketWithClock(capacity, refillRate, time.Now)
}

func NewTokenBucketWithClock(capacity int, refillRate float64, now Clock) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}
	t.lastRefill = now

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
}
