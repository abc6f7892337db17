package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
)

const retryAfterSeconds = "5"

func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					writeUnavailable(w)
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeUnavailable клиент панели повторит запрос на другой инстанс.
func writeUnavailable(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Connection", "close")
	w.Header().Set("Retry-After", retryAfterSeconds)
	w.WriteHeader(http.StatusServiceUnavailable)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "service is shutting down"})
}
