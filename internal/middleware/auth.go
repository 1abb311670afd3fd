package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey int

const bearerKey ctxKey = iota

// WithBearer кладёт значение заголовка Authorization: Bearer в контекст.
// Токен для бэкенда непрозрачен: он нигде не проверяется, только
// сопровождает запрос (мутирующие вызовы клиент всегда шлёт с ним).
func WithBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			tok := strings.TrimPrefix(h, "Bearer ")
			r = r.WithContext(context.WithValue(r.Context(), bearerKey, tok))
		}
		next.ServeHTTP(w, r)
	})
}

// GetBearerFromContext возвращает токен запроса, если он был передан.
func GetBearerFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(bearerKey).(string)
	return tok, ok && tok != ""
}
