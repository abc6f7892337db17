package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"adminpanel/pkg/logger"

	"github.com/gorilla/mux"
)

// DeviceIDHeader идентификатор установки клиента, к нему привязан счетчик попыток входа.
const DeviceIDHeader = "X-Device-ID"

// Middleware общий лимит на весь сервер.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rlimiter.Allow() {
				reject(log, w, r, rateLimiterQPS)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// KeyedMiddleware лимит на устройство: X-Device-ID, без него - адрес клиента.
// Вешается на вход, чтобы перебор паролей с одного устройства упирался в 429
// раньше, чем в блокировку.
func KeyedMiddleware(log handlerLogger, rateLimiterQPS int, rlimiter KeyedLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rlimiter.AllowKey(clientKey(r)) {
				reject(log, w, r, rateLimiterQPS)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if device := r.Header.Get(DeviceIDHeader); device != "" {
		return "device:" + device
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "addr:" + r.RemoteAddr
	}
	return "addr:" + host
}

func reject(log handlerLogger, w http.ResponseWriter, r *http.Request, rateLimiterQPS int) {
	handlerPath := r.URL.Path
	route := mux.CurrentRoute(r)
	if route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			handlerPath = template
		}
	}

	log.With(
		logger.NewField("method", r.Method),
		logger.NewField("path", r.URL.Path),
		logger.NewField("route", handlerPath),
		logger.NewField("remote_addr", r.RemoteAddr),
	).Warn("rate limit exceeded")

	RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)

	_, err := w.Write([]byte(`{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`))
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write rate limit response")
	}
}
