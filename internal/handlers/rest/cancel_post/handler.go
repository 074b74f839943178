package cancel_post

import (
	"errors"
	"net/http"

	"dispatch/internal/pkg/sessionctx"
	"dispatch/internal/service/order"
	"dispatch/internal/service/panel"
	"dispatch/pkg/logger"
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

	orderID := mux.Vars(r)["id"]
	err := h.service.RequestCancel(r.Context(), sessionID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, panel.ErrSessionNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			).Error("request cancel")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
