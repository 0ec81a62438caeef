package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"todo/shared/cache"
	"todo/shared/constant"
	"todo/transport/http/response"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// RateLimit counts requests per client address and user agent in Redis. Every
// allowed request rewrites the counter with a fresh TTL, so the count only resets
// once the client has been quiet for a whole window. Any cache failure lets the
// request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			cacheKey := cache.Key(cacheKeyRateLimit, clientIP(r), userAgent(r))

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			if err != nil {
				if !errors.Is(err, cache.Nil) {
					zerolog.Ctx(r.Context()).Warn().Err(err).Msg("rate limiter unavailable")
					next.ServeHTTP(w, r)

					return
				}

				count = 1
			} else {
				count++
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func userAgent(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == constant.Empty {
		ua = unknownUserAgent
	}

	return ua
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For may list several hops; the first one is the client
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
