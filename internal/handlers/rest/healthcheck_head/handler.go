package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const checkTimeout = 2 * time.Second

type Handler struct {
	isShuttingDown *atomic.Bool
	checkers       []Checker
}

func New(isShuttingDown *atomic.Bool, checkers ...Checker) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		checkers:       checkers,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	for _, checker := range h.checkers {
		if err := checker.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
