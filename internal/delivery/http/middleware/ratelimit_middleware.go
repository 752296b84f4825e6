package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"go-product-catalog/config"
	"go-product-catalog/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// incrWithExpireScript counts a request in a fixed window, setting the
// window's TTL on first increment. Returns the count in the current window.
var incrWithExpireScript = redis.NewScript(`
	local count = redis.call('INCR', KEYS[1])
	if count == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return count
`)

// RateLimitMiddleware throttles requests per client IP using a Redis-backed
// fixed window. Redis failures fail open: a broken limiter must not take the
// API down with it.
type RateLimitMiddleware struct {
	redisClient *redis.Client
	log         *logrus.Logger
	limit       int
	window      time.Duration
}

func NewRateLimitMiddleware(redisClient *redis.Client, log *logrus.Logger, cfg config.RateLimitConfig) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redisClient: redisClient,
		log:         log,
		limit:       cfg.Requests,
		window:      cfg.Window,
	}
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		key := fmt.Sprintf("ratelimit:%s", clientIP(req))

		count, err := incrWithExpireScript.Run(req.Context(), m.redisClient, []string{key}, m.window.Milliseconds()).Int64()
		if err != nil {
			m.log.Warnf("Rate limiter unavailable: %+v", err)
			next.ServeHTTP(w, req)
			return
		}

		if count > int64(m.limit) {
			response.TooManyRequests(w, "")
			return
		}

		next.ServeHTTP(w, req)
	})
}

func clientIP(req *http.Request) string {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
