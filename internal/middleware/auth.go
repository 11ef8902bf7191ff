package middleware

import (
	"ItemKeeper/internal/auth"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "user_id"

// WithAuth пропускает запрос дальше только с валидным bearer-токеном
// и кладёт идентификатор пользователя в контекст.
// onUnauthorized пишет ответ 401; nil — plain-text "Unauthorized".
func WithAuth(verifier auth.TokenVerifier, onUnauthorized http.HandlerFunc) func(http.Handler) http.Handler {
	if onUnauthorized == nil {
		onUnauthorized = func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				onUnauthorized(w, r)
				return
			}
			userID, err := verifier.Verify(r.Context(), token)
			if err != nil || userID == "" {
				// сам токен не логируем
				getLogger().Debugw("token rejected", "path", r.URL.Path)
				onUnauthorized(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// bearerToken — второй сегмент заголовка "Bearer <token>".
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// WithUserID кладёт идентификатор пользователя в контекст.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext достаёт идентификатор пользователя, положенный WithAuth.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
