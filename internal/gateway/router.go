package gateway

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/lojaplena/favoritos/internal/auth"
	"github.com/lojaplena/favoritos/internal/config"
	"github.com/lojaplena/favoritos/internal/httpapi"
	httpmiddleware "github.com/lojaplena/favoritos/internal/httpapi/middleware"
	"github.com/lojaplena/favoritos/internal/ratelimit"
)

// NewRouter devolve o roteador do gateway. redisClient pode ser nil; nesse
// caso o limite de requisições fica restrito ao processo.
func NewRouter(cfg *config.Gateway, redisClient *redis.Client) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	login := NewLoginHandler(jwtManager)

	var limiter ratelimit.Limiter
	if redisClient != nil {
		limiter = ratelimit.NewRedis(redisClient, cfg.RateLimitWindow)
	} else {
		limiter = ratelimit.NewInMemory(cfg.RateLimitWindow)
	}

	authenticate := httpmiddleware.Authenticate(jwtManager)
	requireRead := httpmiddleware.RequireRoles(auth.RoleRead)
	requireWrite := httpmiddleware.RequireRoles(auth.RoleWrite)

	clientProxy := NewProxy(cfg.ClientServiceURL, "/api/client")
	favoriteProxy := NewProxy(cfg.FavoriteServiceURL, "/api/favorite")

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.WindowLimit(limiter, cfg.RateLimitMax))

	r.Get("/health", httpapi.Health)

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", login.Login)

		api.Route("/client", func(c chi.Router) {
			c.Use(authenticate)
			c.With(requireWrite).Post("/", clientProxy.ServeHTTP)
			c.With(requireRead).Get("/", clientProxy.ServeHTTP)
			c.With(requireRead).Get("/{id}", clientProxy.ServeHTTP)
			c.With(requireWrite).Put("/{id}", clientProxy.ServeHTTP)
			c.With(requireWrite).Delete("/{id}", clientProxy.ServeHTTP)
		})

		api.Route("/favorite", func(f chi.Router) {
			f.Use(authenticate)
			f.With(requireWrite).Post("/", favoriteProxy.ServeHTTP)
			f.With(requireRead).Get("/{clientId}", favoriteProxy.ServeHTTP)
			f.With(requireWrite).Delete("/{clientId}", favoriteProxy.ServeHTTP)
			f.With(requireWrite).Delete("/item/{favoriteId}", favoriteProxy.ServeHTTP)
		})
	})

	return r
}
