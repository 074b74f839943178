package rate_limiter

import (
	"net/http"
	"strconv"

	"dispatch/pkg/logger"
	"github.com/gorilla/mux"
)

const rejectedBody = `{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`

// Middleware отбрасывает запросы сверх лимита limiter с 429.
// qps уходит клиенту в заголовке X-RateLimit-Limit.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RejectedRequestsTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(rejectedBody))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
