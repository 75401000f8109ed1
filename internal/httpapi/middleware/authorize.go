package middleware

import (
	"net/http"

	"github.com/lojaplena/favoritos/internal/auth"
	"github.com/lojaplena/favoritos/internal/httpapi"
)

// RequireRoles garante que a identidade autenticada possua pelo menos um dos
// papéis exigidos. Deve ser encadeado após o Authenticate; a ausência de
// identidade é tratada como acesso negado.
func RequireRoles(requiredRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFrom(r.Context())
			if !ok || len(identity.Roles) == 0 {
				httpapi.WriteMessage(w, http.StatusForbidden, "Acesso negado. Roles não encontradas para o usuário.")
				return
			}

			if !auth.HasAnyRole(identity.Roles, requiredRoles) {
				httpapi.WriteMessage(w, http.StatusForbidden,
					"Acesso negado. Requer uma das seguintes roles: "+auth.JoinRoles(requiredRoles))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
