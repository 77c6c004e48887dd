package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"namejar/internal/platform/config"
	"namejar/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack, the zero value is a permissive local setup
type StackOptions struct {
	CORSOrigins []string
	// Throttle caps in flight requests, 0 is unlimited
	Throttle int
	// RateRPS and RateBurst are per client, RateRPS 0 disables
	RateRPS   float64
	RateBurst int
	Timeout   time.Duration
	// Slow marks access log lines at warn level
	Slow time.Duration
}

// StackFromConfig reads CORS_ORIGINS, THROTTLE, RATE_RPS, RATE_BURST, TIMEOUT and SLOW_REQUEST
func StackFromConfig(c config.Conf) StackOptions {
	return StackOptions{
		CORSOrigins: c.MayCSV("CORS_ORIGINS", nil),
		Throttle:    c.MayInt("THROTTLE", 0),
		RateRPS:     c.MayFloat64("RATE_RPS", 0),
		RateBurst:   c.MayInt("RATE_BURST", 0),
		Timeout:     c.MayDuration("TIMEOUT", 30*time.Second),
		Slow:        c.MayDuration("SLOW_REQUEST", 0),
	}
}

// CommonStack is the middleware every API scope runs, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.RecoverJSON,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.RateLimit(middleware.RateLimitOptions{RPS: o.RateRPS, Burst: o.RateBurst}),
		middleware.Throttle(o.Throttle),
		middleware.NoCache(),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
