package selection_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/converters"
	"dispatch/internal/pkg/sessionctx"
	"dispatch/internal/service/order"
	"dispatch/internal/service/panel"
	"dispatch/pkg/logger"
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

	var selectionDTO dto.SelectionRequest
	err := json.NewDecoder(r.Body).Decode(&selectionDTO)
	if err != nil || selectionDTO.OrderId == nil || strings.TrimSpace(*selectionDTO.OrderId) == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	selected, err := h.service.Select(r.Context(), sessionID, *selectionDTO.OrderId)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, panel.ErrSessionNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := converters.ToOrderDTO(*selected)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
