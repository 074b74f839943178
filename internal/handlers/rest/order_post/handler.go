package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/converters"
	"dispatch/internal/pkg/sessionctx"
	"dispatch/internal/service/order"
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

	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateOrder(r.Context(), sessionID, converters.FromOrderCreateDTO(orderCreateDTO))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidName),
			errors.Is(err, order.ErrInvalidPhone),
			errors.Is(err, order.ErrInvalidPaymentMethod),
			errors.Is(err, order.ErrMissingCustomerAddress),
			errors.Is(err, order.ErrInvalidLocation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, order.ErrSessionNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			h.log.With(
				logger.NewField("session_id", sessionID),
				logger.NewField("error", err),
			).Error("create order")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := converters.ToOrderDTO(*created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
