package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
)

// userIDHeader заголовок с идентификатором аутентифицированного пользователя
// Заполняется API-гейтвеем после проверки токена
const userIDHeader = "X-User-ID"

const msgMissingUserID = "отсутствует ID пользователя"

type contextKey string

const userIDKey contextKey = "userID"

// Auth извлекает ID пользователя из заголовка и кладет его в контекст запроса
// Запросы без корректного заголовка отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(userIDHeader)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
