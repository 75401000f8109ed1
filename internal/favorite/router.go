package favorite

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/lojaplena/favoritos/internal/config"
	"github.com/lojaplena/favoritos/internal/httpapi"
	httpmiddleware "github.com/lojaplena/favoritos/internal/httpapi/middleware"
)

// NewRouter devolve o roteador do serviço de favoritos.
func NewRouter(cfg *config.Favorites, pool *pgxpool.Pool) http.Handler {
	directory := NewHTTPDirectory(cfg.ClientServiceURL, log.With().Str("component", "directory").Logger())
	catalog := NewHTTPCatalog(cfg.CatalogURL, log.With().Str("component", "catalog").Logger())
	service := NewService(NewRepository(pool), directory, catalog)
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
