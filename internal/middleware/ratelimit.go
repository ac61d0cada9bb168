package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/folio-backend/internal/config"
	"github.com/stemsi/folio-backend/internal/metrics"
	"github.com/stemsi/folio-backend/internal/response"
	"golang.org/x/time/rate"
)

const visitorTTL = 3 * time.Minute

// RateLimiter is a per-IP token bucket kept in process memory.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows perMinute requests per client IP per minute, with a
// burst of the same size.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		limit:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     perMinute,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow consumes a token for key.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	// Stale visitors are swept inline so the limiter owns no goroutine.
	if now.Sub(rl.lastSweep) > time.Minute {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) > visitorTTL {
				delete(rl.visitors, k)
			}
		}
		rl.lastSweep = now
	}

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			metrics.RateLimitRejected.WithLabelValues("memory").Inc()
			c.Header("Retry-After", "60")
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

// RedisRateLimit is a fixed one-minute window shared across instances.
// A nil client falls back to the in-memory limiter. Redis errors let the
// request through.
func RedisRateLimit(rdb *redis.Client, perMinute int, log zerolog.Logger) gin.HandlerFunc {
	if rdb == nil {
		return NewRateLimiter(perMinute).Middleware()
	}
	if perMinute <= 0 {
		perMinute = 1
	}
	log = log.With().Str("component", "rate_limit").Logger()

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		bucket := time.Now().Unix() / 60
		key := config.CacheKey.ContactRateKey(c.ClientIP(), bucket)

		cnt, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("Rate limit check failed, allowing request")
			c.Next()
			return
		}
		if cnt == 1 {
			_ = rdb.Expire(ctx, key, 61*time.Second).Err()
		}
		if cnt > int64(perMinute) {
			metrics.RateLimitRejected.WithLabelValues("redis").Inc()
			c.Header("Retry-After", strconv.FormatInt(60-time.Now().Unix()%60, 10))
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}
