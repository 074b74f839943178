package signin_post

import (
	"encoding/json"
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/converters"
	"dispatch/internal/pkg/middlewares/session_gate"
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
	var signInDTO dto.SignInRequest
	err := json.NewDecoder(r.Body).Decode(&signInDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// учётные данные не проверяются, любая пара открывает сессию
	credentials := entities.Credentials{}
	if signInDTO.Email != nil {
		credentials.Email = *signInDTO.Email
	}
	if signInDTO.Password != nil {
		credentials.Password = *signInDTO.Password
	}

	signedIn, err := h.service.SignIn(r.Context(), credentials)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("sign in")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session_gate.CookieName,
		Value:    signedIn.Token,
		Path:     "/",
		Expires:  signedIn.ExpiresAt,
		MaxAge:   int(time.Until(signedIn.ExpiresAt).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response := dto.SignInResponse{
		Token:     signedIn.Token,
		ExpiresAt: signedIn.ExpiresAt,
		Session:   converters.ToSessionDTO(signedIn.Session),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
