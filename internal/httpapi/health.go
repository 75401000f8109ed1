package httpapi

import (
	"context"
	"net/http"
	"time"
)

// Pinger é satisfeito pelo pool pgx e por qualquer dependência verificável.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health responde prontidão do processo.
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready verifica a dependência antes de declarar o serviço pronto.
func Ready(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			WriteMessage(w, http.StatusServiceUnavailable, "dependência indisponível")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
