package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	api "pulse-network-organizer/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const idleBucketTTL = 5 * time.Minute

// RateLimiter throttles expensive routes with one token bucket per route and client IP.
type RateLimiter struct {
	log   *zap.SugaredLogger
	limit rate.Limit
	burst int
	now   func() time.Time

	mu        sync.Mutex
	buckets   map[bucketKey]*bucket
	lastSweep time.Time
}

type bucketKey struct {
	route string
	ip    string
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows requestsPerMinute per route and client, with a burst of a tenth of it.
// A non-positive budget disables limiting.
func NewRateLimiter(requestsPerMinute int, log *zap.SugaredLogger) *RateLimiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	return &RateLimiter{
		log:     log.Named("ratelimit"),
		limit:   rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:   max(requestsPerMinute/10, 1),
		now:     time.Now,
		buckets: make(map[bucketKey]*bucket),
	}
}

// Handler rejects requests over budget with 429 and a Retry-After header.
func (r *RateLimiter) Handler() fiber.Handler {
	if r == nil {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		now := r.now()
		key := bucketKey{route: c.Route().Path, ip: c.IP()}

		res := r.bucket(key, now).ReserveN(now, 1)
		wait := res.DelayFrom(now)
		if wait == 0 {
			return c.Next()
		}
		res.CancelAt(now)

		retryAfter := int(math.Ceil(wait.Seconds()))
		r.log.Warnw("rate limit exceeded", "route", key.route, "ip", key.ip, "retry_after_s", retryAfter)
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))

		var body api.ErrorResponse
		body.Error.Code = api.RATELIMITED
		body.Error.Message = "too many requests, retry in " + strconv.Itoa(retryAfter) + "s"
		return c.Status(http.StatusTooManyRequests).JSON(body)
	}
}

func (r *RateLimiter) bucket(key bucketKey, now time.Time) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if now.Sub(r.lastSweep) > idleBucketTTL {
		for k, b := range r.buckets {
			if now.Sub(b.lastSeen) > idleBucketTTL {
				delete(r.buckets, k)
			}
		}
		r.lastSweep = now
	}

	b, ok := r.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}
