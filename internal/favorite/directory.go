package favorite

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/lojaplena/favoritos/internal/apperr"
)

// Directory confirma a existência de clientes no serviço de clientes.
type Directory interface {
	ClientExists(ctx context.Context, clientID string) (bool, error)
}

// HTTPDirectory consulta o serviço de clientes por HTTP.
type HTTPDirectory struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewHTTPDirectory cria o cliente do serviço de clientes.
func NewHTTPDirectory(baseURL string, logger zerolog.Logger) *HTTPDirectory {
	return &HTTPDirectory{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// ClientExists distingue ausência (404, sem erro) de indisponibilidade do
// serviço de clientes (erro classificado como Unavailable).
func (d *HTTPDirectory) ClientExists(ctx context.Context, clientID string) (bool, error) {
	url := fmt.Sprintf("%s/%s", d.baseURL, clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, d.unavailable(clientID, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return false, d.unavailable(clientID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		d.logger.Info().Str("client_id", clientID).Msg("cliente não encontrado no serviço de clientes")
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	default:
		return false, d.unavailable(clientID, fmt.Errorf("status %d", resp.StatusCode))
	}
}

func (d *HTTPDirectory) unavailable(clientID string, err error) error {
	d.logger.Error().Err(err).Str("client_id", clientID).Msg("falha ao verificar existência do cliente")
	return apperr.Unavailable(fmt.Sprintf(
		"Não foi possível verificar a existência do cliente %s.", clientID))
}
