package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

const shuttingDownBody = `{"error":"Service Unavailable","message":"Service is shutting down"}`

// Middleware отклоняет новые запросы, когда ongoingCtx отменён в ходе остановки
// сервера. Запросы, уже попавшие в обработку, дорабатывают.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Content-Type", "application/json")
					w.Header().Set("Connection", "close")
					w.WriteHeader(http.StatusServiceUnavailable)
					_, _ = w.Write([]byte(shuttingDownBody))
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
