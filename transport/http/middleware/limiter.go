package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

type rateWindow struct {
	Count   int   `json:"count"`
	ResetAt int64 `json:"resetAt"`
}

// remaining reports the whole seconds left in the window, never less than one.
func (w rateWindow) remaining(now time.Time) int {
	left := time.UnixMilli(w.ResetAt).Sub(now)
	secs := int((left + time.Second - 1) / time.Second)

	return max(1, secs)
}

// RateLimit counts requests per client and user agent in a fixed window that starts with the
// client's first request. Later requests keep the window's original expiry. Counters live in
// their own store, so limits are shared between instances only with a remote cache driver.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds
			now := time.Now()

			cacheKey := shared.BuildCacheKey(a.config.App.Name, cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

			var window rateWindow
			err := a.counters.Get(r.Context(), cacheKey, &window)

			switch {
			case err == nil && window.ResetAt > now.UnixMilli():
				window.Count++
			case err == nil, errors.Is(err, cache.Nil):
				window = rateWindow{
					Count:   1,
					ResetAt: now.Add(time.Duration(windowSecs) * time.Second).UnixMilli(),
				}
			default:
				log.Warn().Err(err).Msg("rate limiter cache unavailable, letting request through")
				next.ServeHTTP(w, r)

				return
			}

			if window.Count > maxReqs {
				response.WithRequestLimitExceeded(w, window.remaining(now))

				return
			}

			if err = a.counters.Save(r.Context(), cacheKey, window, window.remaining(now)); err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-window.Count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == constant.Empty {
		ua = "unknown"
	}

	return ua
}

// getClientIP strips the port from RemoteAddr. Proxy headers only count when SERVER_TRUST_PROXY
// installs chi's RealIP, which rewrites RemoteAddr before this runs.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
