package client

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lojaplena/favoritos/internal/httpapi"
	httpmiddleware "github.com/lojaplena/favoritos/internal/httpapi/middleware"
)

// NewRouter devolve o roteador do serviço de clientes.
func NewRouter(pool *pgxpool.Pool) http.Handler {
	service := NewService(NewRepository(pool))
	handler := NewHandler(service)

	limiter := httpmiddleware.NewRateLimiter(50, 100)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.IPRateLimit(limiter))

	r.Get("/health", httpapi.Health)
	r.Get("/ready", httpapi.Ready(pool))

	handler.RegisterRoutes(r)

	return r
}
