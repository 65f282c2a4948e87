package middleware

import (
	"net/http"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
	"github.com/m04kA/Oasis-BookingService/internal/auth"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает только запросы с заголовком Authorization: Bearer <секрет администратора>
func AdminAuth(verifier auth.Verifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := auth.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}

			if err := verifier.Verify(token); err != nil {
				logger.Warn("%s %s - Admin authentication failed: remote=%s", r.Method, r.URL.Path, remoteIP(r))
				handlers.RespondUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
