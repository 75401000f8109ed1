package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/lojaplena/favoritos/internal/auth"
	"github.com/lojaplena/favoritos/internal/httpapi"
)

type contextKey string

const contextKeyIdentity contextKey = "identity"

// Authenticate valida o JWT do cabeçalho Authorization e injeta a identidade
// no contexto. A expiração responde 401; assinatura inválida responde 403,
// mantendo as duas falhas distinguíveis para o cliente.
func Authenticate(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httpapi.WriteMessage(w, http.StatusUnauthorized, "Cabeçalho de autorização ausente.")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
				httpapi.WriteMessage(w, http.StatusUnauthorized, "Token de autenticação não fornecido.")
				return
			}

			identity, err := jwtManager.ParseAndValidate(parts[1])
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					httpapi.WriteMessage(w, http.StatusUnauthorized, "Token expirado.")
					return
				}
				httpapi.WriteMessage(w, http.StatusForbidden, "Token inválido.")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyIdentity, *identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom recupera a identidade autenticada do contexto.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(contextKeyIdentity).(auth.Identity)
	return identity, ok
}

// WithIdentity injeta uma identidade no contexto. Usado em testes e em
// composições que não passam pelo Authenticate.
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, contextKeyIdentity, identity)
}
