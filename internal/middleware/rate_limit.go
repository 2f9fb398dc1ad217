package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/area-length-service/internal/domain/dto"
	"github.com/guttosm/area-length-service/internal/i18n"
)

const defaultNumShards = 16

// bucket is the token bucket of one client.
type bucket struct {
	tokens float64
	last   time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

// ShardedRateLimiter is a token bucket limiter. Each client may burst up to
// rate requests and regains rate tokens per window, refilled continuously.
// Clients are spread over shards by FNV hash to keep lock contention low.
type ShardedRateLimiter struct {
	shards   []*limiterShard
	rate     int
	window   time.Duration
	perSec   float64
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter with the default shard count.
func NewRateLimiter(rate int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a limiter and starts its eviction loop.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *ShardedRateLimiter {
	rl := newShardedRateLimiter(rate, window, numShards, time.Now)
	go rl.evictLoop()
	return rl
}

func newShardedRateLimiter(rate int, window time.Duration, numShards int, now func() time.Time) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	if rate <= 0 {
		rate = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	shards := make([]*limiterShard, numShards)
	for i := range shards {
		shards[i] = &limiterShard{buckets: make(map[string]*bucket)}
	}
	return &ShardedRateLimiter{
		shards: shards,
		rate:   rate,
		window: window,
		perSec: float64(rate) / window.Seconds(),
		now:    now,
		stopCh: make(chan struct{}),
	}
}

func (rl *ShardedRateLimiter) shardFor(key string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// take spends one token of key. When none is left it reports how long until
// the next token is available.
func (rl *ShardedRateLimiter) take(key string) (allowed bool, remaining int, retryAfter time.Duration) {
	s := rl.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := rl.now()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(rl.rate), last: now}
		s.buckets[key] = b
	} else {
		elapsed := now.Sub(b.last).Seconds()
		b.tokens = math.Min(float64(rl.rate), b.tokens+elapsed*rl.perSec)
		b.last = now
	}

	if b.tokens < 1 {
		wait := (1 - b.tokens) / rl.perSec
		return false, 0, time.Duration(wait * float64(time.Second))
	}
	b.tokens--
	return true, int(b.tokens), 0
}

// RateLimit limits requests per client. Clients sending an API key get a
// bucket per key; everyone else is limited per IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return rl.limit(clientKey)
}

// SubjectRateLimit limits authenticated requests per token subject. It must
// run after JWTAuth; requests without a subject fall back to RateLimit keys.
func (rl *ShardedRateLimiter) SubjectRateLimit() gin.HandlerFunc {
	return rl.limit(func(c *gin.Context) string {
		if subject := GetSubject(c); subject != "" {
			return "subject:" + subject
		}
		return clientKey(c)
	})
}

func (rl *ShardedRateLimiter) limit(keyFor func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, retryAfter := rl.take(keyFor(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if allowed {
			c.Next()
			return
		}

		seconds := int(math.Ceil(retryAfter.Seconds()))
		if seconds < 1 {
			seconds = 1
		}
		c.Header("Retry-After", strconv.Itoa(seconds))
		message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
	}
}

func clientKey(c *gin.Context) string {
	if key := apiKeyFrom(c); key != "" {
		return "key:" + key
	}
	return "ip:" + c.ClientIP()
}

func (rl *ShardedRateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stopCh:
			return
		}
	}
}

// evictIdle drops buckets idle for a full window. They would have refilled
// completely, so a fresh bucket is equivalent.
func (rl *ShardedRateLimiter) evictIdle() {
	now := rl.now()
	for _, s := range rl.shards {
		s.mu.Lock()
		for key, b := range s.buckets {
			if now.Sub(b.last) >= rl.window {
				delete(s.buckets, key)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the eviction loop. Safe to call more than once.
func (rl *ShardedRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked clients in total and per shard.
func (rl *ShardedRateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, s := range rl.shards {
		s.mu.Lock()
		perShard[i] = len(s.buckets)
		s.mu.Unlock()
		total += perShard[i]
	}
	return total, perShard
}
