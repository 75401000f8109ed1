package middleware

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lojaplena/favoritos/internal/httpapi"
)

// Recover garante resposta sanitizada em caso de panic. O stack nunca chega
// ao cliente.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("panic recuperado")
				httpapi.WriteMessage(w, http.StatusInternalServerError, "Erro interno no servidor.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
