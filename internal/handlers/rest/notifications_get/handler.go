package notifications_get

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/converters"
	"dispatch/internal/pkg/sessionctx"
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

// ServeHTTP отдаёт ещё не скрытые уведомления сессии.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionctx.SessionID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	notifications := h.service.List(r.Context(), sessionID)

	response := make([]dto.Notification, len(notifications))
	for i, n := range notifications {
		response[i] = converters.ToNotificationDTO(n)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
