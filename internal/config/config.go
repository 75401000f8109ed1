package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Gateway centraliza a configuração do gateway carregada do ambiente.
type Gateway struct {
	Port               int
	JWTSecret          string
	JWTTTL             time.Duration
	ClientServiceURL   string
	FavoriteServiceURL string
	RedisURL           string
	RateLimitMax       int
	RateLimitWindow    time.Duration
}

// Clients centraliza a configuração do serviço de clientes.
type Clients struct {
	Port  int
	DBDSN string
}

// Favorites centraliza a configuração do serviço de favoritos.
type Favorites struct {
	Port             int
	DBDSN            string
	ClientServiceURL string
	CatalogURL       string
}

// LoadGateway carrega variáveis de ambiente do gateway e aplica defaults.
func LoadGateway() (*Gateway, error) {
	_ = godotenv.Load()

	cfg := &Gateway{}

	port, err := parsePort("3000")
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", ""))
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET obrigatório")
	}

	ttl, err := parseDurationEnv("JWT_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.JWTTTL = ttl

	cfg.ClientServiceURL = strings.TrimRight(getEnv("CLIENT_SERVICE_URL", ""), "/")
	if cfg.ClientServiceURL == "" {
		return nil, errors.New("CLIENT_SERVICE_URL obrigatório")
	}

	cfg.FavoriteServiceURL = strings.TrimRight(getEnv("FAVORITE_SERVICE_URL", ""), "/")
	if cfg.FavoriteServiceURL == "" {
		return nil, errors.New("FAVORITE_SERVICE_URL obrigatório")
	}

	cfg.RedisURL = getEnv("REDIS_URL", "")

	maxStr := getEnv("RATE_LIMIT_MAX", "1000")
	max, err := strconv.Atoi(maxStr)
	if err != nil || max <= 0 {
		return nil, errors.New("RATE_LIMIT_MAX inválido")
	}
	cfg.RateLimitMax = max

	window, err := parseDurationEnv("RATE_LIMIT_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitWindow = window

	return cfg, nil
}

// LoadClients carrega variáveis do serviço de clientes.
func LoadClients() (*Clients, error) {
	_ = godotenv.Load()

	cfg := &Clients{}

	port, err := parsePort("3001")
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.DBDSN = getEnv("DB_DSN", "")
	if cfg.DBDSN == "" {
		return nil, errors.New("DB_DSN obrigatório")
	}

	return cfg, nil
}

// LoadFavorites carrega variáveis do serviço de favoritos.
func LoadFavorites() (*Favorites, error) {
	_ = godotenv.Load()

	cfg := &Favorites{}

	port, err := parsePort("3002")
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.DBDSN = getEnv("DB_DSN", "")
	if cfg.DBDSN == "" {
		return nil, errors.New("DB_DSN obrigatório")
	}

	cfg.ClientServiceURL = strings.TrimRight(getEnv("CLIENT_SERVICE_URL", ""), "/")
	if cfg.ClientServiceURL == "" {
		return nil, errors.New("CLIENT_SERVICE_URL obrigatório")
	}

	cfg.CatalogURL = strings.TrimRight(getEnv("CATALOG_URL", "https://fakestoreapi.com/products"), "/")

	return cfg, nil
}

func parsePort(def string) (int, error) {
	portStr := getEnv("PORT", def)
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return 0, errors.New("PORT inválida")
	}
	return port, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil {
		return 0, errors.New(key + " inválido")
	}
	return dur, nil
}
