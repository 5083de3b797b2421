package middleware

import (
	"net/http"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
)

const (
	// AdminTokenHeader заголовок с токеном администратора
	AdminTokenHeader = "X-Admin-Token"

	msgMissingToken = "отсутствует токен администратора"
	msgInvalidToken = "некорректный токен администратора"
)

// AdminAuth проверяет токен администратора в заголовке X-Admin-Token.
// Токен сравнивается с плоским значением из конфигурации
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)

			if got == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if got != token {
				handlers.RespondForbidden(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
