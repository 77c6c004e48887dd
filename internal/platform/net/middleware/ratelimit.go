package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	perr "namejar/internal/platform/errors"
	pnet "namejar/internal/platform/net"
	phttp "namejar/internal/platform/net/http"
)

// RateLimitOptions configures per client token buckets
type RateLimitOptions struct {
	RPS   float64 // refill rate, <= 0 disables the limiter
	Burst int     // bucket size, defaults to ceil(RPS)
	// TTL evicts idle clients, default 10m
	TTL time.Duration
	// Key picks the bucket, default is the remote IP (run after RealIP)
	Key func(*http.Request) string
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

type limiter struct {
	mu      sync.Mutex
	opt     RateLimitOptions
	buckets map[string]*bucket
	now     func() time.Time
	swept   time.Time
}

// RateLimit rejects clients above RPS with a 429 envelope and Retry-After
func RateLimit(opt RateLimitOptions) func(http.Handler) http.Handler {
	if opt.RPS <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return newLimiter(opt, time.Now).middleware
}

func newLimiter(opt RateLimitOptions, now func() time.Time) *limiter {
	if opt.Burst <= 0 {
		opt.Burst = int(math.Ceil(opt.RPS))
	}
	if opt.TTL <= 0 {
		opt.TTL = 10 * time.Minute
	}
	if opt.Key == nil {
		opt.Key = remoteIP
	}
	return &limiter{opt: opt, buckets: map[string]*bucket{}, now: now, swept: now()}
}

func (l *limiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, wait := l.allow(l.opt.Key(r))
		if !ok {
			secs := int(math.Ceil(wait.Seconds()))
			if secs < 1 {
				secs = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			status, body := pnet.Error(perr.New(perr.ErrorCodeTooManyRequests, "rate limit exceeded"), pnet.RequestID(r.Context()))
			phttp.JSON(w, status, body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allow takes a token for key, reporting the wait until the next one when refused
func (l *limiter) allow(key string) (bool, time.Duration) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.swept) > l.opt.TTL {
		for k, b := range l.buckets {
			if now.Sub(b.seen) > l.opt.TTL {
				delete(l.buckets, k)
			}
		}
		l.swept = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rate.Limit(l.opt.RPS), l.opt.Burst)}
		l.buckets[key] = b
	}
	b.seen = now

	res := b.lim.ReserveN(now, 1)
	if d := res.DelayFrom(now); d > 0 {
		res.CancelAt(now)
		return false, d
	}
	return true, 0
}

func remoteIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
