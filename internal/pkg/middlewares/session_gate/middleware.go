package session_gate

import (
	"errors"
	"net/http"
	"strings"

	"dispatch/internal/pkg/sessionctx"
	"dispatch/internal/service/session"
	"dispatch/pkg/logger"
)

const (
	CookieName = "session"

	bearerPrefix     = "Bearer "
	unauthorizedBody = `{"error":"Unauthorized","message":"Sign in to continue."}`
	internalBody     = `{"error":"Internal Server Error","message":"Failed to check session."}`
)

// Middleware пропускает дальше только запросы с действующим токеном сессии
// (заголовок Authorization: Bearer или cookie session) и кладёт id сессии
// в контекст запроса.
func Middleware(log handlerLogger, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				writeJSON(w, http.StatusUnauthorized, unauthorizedBody)
				return
			}

			s, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, session.ErrUnauthorized) {
					log.With(
						logger.NewField("path", r.URL.Path),
						logger.NewField("reason", err.Error()),
					).Warn("session rejected")
					writeJSON(w, http.StatusUnauthorized, unauthorizedBody)
					return
				}

				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Error("session check failed")
				writeJSON(w, http.StatusInternalServerError, internalBody)
				return
			}

			next.ServeHTTP(w, r.WithContext(sessionctx.WithSessionID(r.Context(), s.ID)))
		})
	}
}

// TokenFromRequest достаёт токен сессии. Заголовок Authorization важнее cookie.
func TokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	cookie, err := r.Cookie(CookieName)
	if err == nil {
		return cookie.Value
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
