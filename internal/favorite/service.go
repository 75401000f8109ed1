package favorite

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lojaplena/favoritos/internal/apperr"
)

// Store é a superfície de persistência consumida pelo serviço.
type Store interface {
	Create(ctx context.Context, clientID uuid.UUID, productID int) (*Favorite, error)
	Exists(ctx context.Context, clientID uuid.UUID, productID int) (bool, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]Favorite, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByClient(ctx context.Context, clientID uuid.UUID) (bool, error)
}

// Service orquestra o fluxo de favoritos: valida referências externas antes
// de tocar o armazenamento local.
type Service struct {
	store     Store
	directory Directory
	catalog   Catalog
}

// NewService cria uma nova instância de Service.
func NewService(store Store, directory Directory, catalog Catalog) *Service {
	return &Service{store: store, directory: directory, catalog: catalog}
}

// Create favorita um produto para um cliente. A ordem das checagens é
// contrato observável: existência do cliente, existência do produto e só
// então unicidade do par. Nenhuma transação cobre as checagens remotas mais
// o insert; um cliente removido entre a checagem e o insert é uma janela
// aceita e documentada.
func (s *Service) Create(ctx context.Context, clientID string, productID int) (*Favorite, error) {
	exists, err := s.directory.ClientExists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound(fmt.Sprintf("Cliente com ID %s não encontrado.", clientID))
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.BadRequest(fmt.Sprintf("Produto com ID %d não encontrado.", productID))
	}

	// O serviço de clientes identifica registros por uuid; um id que passou
	// na checagem de existência e não parseia indica diretório inconsistente.
	cid, err := uuid.Parse(clientID)
	if err != nil {
		return nil, apperr.NotFound(fmt.Sprintf("Cliente com ID %s não encontrado.", clientID))
	}

	duplicated, err := s.store.Exists(ctx, cid, productID)
	if err != nil {
		return nil, err
	}
	if duplicated {
		return nil, duplicateError(clientID, productID)
	}

	created, err := s.store.Create(ctx, cid, productID)
	if err != nil {
		if errors.Is(err, ErrDuplicatePair) {
			return nil, duplicateError(clientID, productID)
		}
		return nil, err
	}
	return created, nil
}

// ListProducts devolve os detalhes de catálogo dos favoritos do cliente.
// As buscas no catálogo correm em paralelo e todas precisam terminar antes
// da resposta; produtos que deixaram de existir são descartados em silêncio,
// preservando a ordem dos demais.
func (s *Service) ListProducts(ctx context.Context, clientID string) ([]Product, error) {
	cid, err := uuid.Parse(clientID)
	if err != nil {
		return []Product{}, nil
	}

	favorites, err := s.store.ListByClient(ctx, cid)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return []Product{}, nil
	}

	results := make([]*Product, len(favorites))
	errs := make([]error, len(favorites))

	var wg sync.WaitGroup
	for i, fav := range favorites {
		wg.Add(1)
		go func(i, productID int) {
			defer wg.Done()
			results[i], errs[i] = s.catalog.GetProduct(ctx, productID)
		}(i, fav.ProductID)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	products := make([]Product, 0, len(results))
	for _, p := range results {
		if p != nil {
			products = append(products, *p)
		}
	}
	return products, nil
}

// DeleteByID remove um favorito específico.
func (s *Service) DeleteByID(ctx context.Context, favoriteID string) (bool, error) {
	id, err := uuid.Parse(favoriteID)
	if err != nil {
		return false, nil
	}
	return s.store.DeleteByID(ctx, id)
}

// DeleteByClient remove todos os favoritos do cliente.
func (s *Service) DeleteByClient(ctx context.Context, clientID string) (bool, error) {
	cid, err := uuid.Parse(clientID)
	if err != nil {
		return false, nil
	}
	return s.store.DeleteByClient(ctx, cid)
}

func duplicateError(clientID string, productID int) error {
	return apperr.Conflict(fmt.Sprintf(
		"Este produto (ID: %d) já está nos favoritos do cliente (ID: %s).", productID, clientID))
}
