package favorite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/lojaplena/favoritos/internal/apperr"
)

// Catalog consulta o catálogo externo de produtos. GetProduct devolve nil sem
// erro quando o produto não existe; indisponibilidade do catálogo vira erro.
type Catalog interface {
	GetProduct(ctx context.Context, productID int) (*Product, error)
}

// HTTPCatalog consome o catálogo por HTTP.
type HTTPCatalog struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewHTTPCatalog cria o cliente do catálogo.
func NewHTTPCatalog(baseURL string, logger zerolog.Logger) *HTTPCatalog {
	return &HTTPCatalog{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// GetProduct busca o produto pelo id. O registro só é aceito quando o id
// devolvido confere com o solicitado: catálogos que respondem um registro
// substituto em vez de 404 são tratados como ausência.
func (c *HTTPCatalog) GetProduct(ctx context.Context, productID int) (*Product, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, c.unavailable(productID, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.unavailable(productID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Warn().Int("product_id", productID).Msg("produto retornou 404 no catálogo")
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.unavailable(productID, fmt.Errorf("status %d", resp.StatusCode))
	}

	var product Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		c.logger.Warn().Int("product_id", productID).Msg("produto não encontrado no catálogo")
		return nil, nil
	}
	if product.ID != productID {
		c.logger.Warn().Int("product_id", productID).Int("returned_id", product.ID).
			Msg("catálogo devolveu produto divergente")
		return nil, nil
	}

	return &product, nil
}

func (c *HTTPCatalog) unavailable(productID int, err error) error {
	c.logger.Error().Err(err).Int("product_id", productID).Msg("falha ao consultar catálogo")
	return apperr.Unavailable(fmt.Sprintf(
		"Não foi possível obter detalhes do produto %d. Tente novamente mais tarde.", productID))
}
