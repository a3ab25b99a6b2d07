package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/ananas-shop/commerce-backend/internal/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// IdentityMiddleware восстанавливает личность вызывающего из необязательного
// заголовка Authorization. Отсутствующий или невалидный токен делает запрос
// анонимным, отказ выносят permission-предикаты конкретных операций.
func IdentityMiddleware(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Decode(token)
			if err != nil || claims.TokenType != auth.TokenTypeAccess {
				next.ServeHTTP(w, r)
				return
			}

			ident := &auth.Identity{ID: claims.UserID, IsVendor: claims.IsVendor}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, ident)))
		})
	}
}

// IdentityFromCtx возвращает личность вызывающего или nil для анонимного запроса.
func IdentityFromCtx(ctx context.Context) *auth.Identity {
	ident, _ := ctx.Value(identityKey).(*auth.Identity)
	return ident
}
