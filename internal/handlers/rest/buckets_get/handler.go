package buckets_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/converters"
	"dispatch/internal/pkg/sessionctx"
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

// ServeHTTP отдаёт секции панели. Параметр search фильтрует заказы по имени
// клиента или ID без учёта регистра.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionctx.SessionID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	search := r.URL.Query().Get("search")

	buckets, err := h.service.Buckets(r.Context(), sessionID, search)
	if err != nil {
		switch {
		case errors.Is(err, panel.ErrSessionNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.Bucket, len(buckets))
	for i, b := range buckets {
		response[i] = converters.ToBucketDTO(b)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
