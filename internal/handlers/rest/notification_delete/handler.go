package notification_delete

import (
	"errors"
	"net/http"

	"dispatch/internal/pkg/sessionctx"
	"dispatch/internal/service/notification"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionctx.SessionID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	err := h.service.Dismiss(r.Context(), sessionID, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrNotificationNotFound):
			// уведомление уже скрыто по таймеру
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
