package middlewares

//go:generate mockgen -source=ratelimit.go -destination=ratelimit_mock.go -package=middlewares

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/poetree/internal/logger"
	"github.com/sbilibin2017/poetree/internal/ratelimit"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
}

// RateLimitMiddleware limits requests per client IP. Limiter errors reject the request.
// It keys on RemoteAddr, so only RealIP with trusted proxies may rewrite it upstream.
func RateLimitMiddleware(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			d, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				logger.Log.Errorw("rate limiter failed", "ip", ip, "error", err)
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			if !d.Allowed {
				retry := int(math.Ceil(d.RetryAfter.Seconds()))
				if retry < 1 {
					retry = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				logger.Log.Infow("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
