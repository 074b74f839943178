package healthcheck_head

import (
	"net/http"
	"strconv"
	"sync/atomic"
)

// ActiveSessionsHeader показывает число открытых сессий дашборда.
const ActiveSessionsHeader = "X-Active-Sessions"

type Handler struct {
	isShuttingDown *atomic.Bool
	sessions       SessionCounter
}

func New(isShuttingDown *atomic.Bool, sessions SessionCounter) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		sessions:       sessions,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(ActiveSessionsHeader, strconv.Itoa(h.sessions.Count(r.Context())))
	w.WriteHeader(http.StatusNoContent)
}
