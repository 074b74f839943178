package logout_post

import (
	"errors"
	"net/http"

	"dispatch/internal/pkg/middlewares/session_gate"
	"dispatch/internal/pkg/sessionctx"
	"dispatch/internal/service/session"
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

	err := h.service.LogOut(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			h.log.With(
				logger.NewField("session_id", sessionID),
				logger.NewField("error", err),
			).Error("log out")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session_gate.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
