package client

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/lojaplena/favoritos/internal/apperr"
)

// Store é a superfície de persistência consumida pelo serviço.
type Store interface {
	Create(ctx context.Context, input Input) (*Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)
	List(ctx context.Context) ([]Client, error)
	EmailInUse(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, input Input) (*Client, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service contém as regras de negócio de clientes.
type Service struct {
	store Store
}

// NewService cria uma nova instância de Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create cadastra um cliente após conferir a unicidade do e-mail. A checagem
// antecede o insert para que o conflito seja distinguível de erro interno;
// a constraint do banco segue como última barreira.
func (s *Service) Create(ctx context.Context, input Input) (*Client, error) {
	inUse, err := s.store.EmailInUse(ctx, input.Email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, apperr.Conflict("O e-mail já está em uso.")
	}

	created, err := s.store.Create(ctx, input)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperr.Conflict("O e-mail já está em uso.")
		}
		return nil, err
	}
	return created, nil
}

// GetByID devolve o cliente ou NotFound.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	found, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Cliente não encontrado.")
		}
		return nil, err
	}
	return found, nil
}

// List devolve todos os clientes em ordem alfabética de nome.
func (s *Service) List(ctx context.Context) ([]Client, error) {
	clients, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []Client{}
	}
	return clients, nil
}

// Update substitui nome e e-mail. Quando o e-mail muda, a unicidade é
// reconferida excluindo o próprio registro.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input) (*Client, error) {
	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Cliente não encontrado.")
		}
		return nil, err
	}

	if input.Email != current.Email {
		inUse, err := s.store.EmailInUse(ctx, input.Email, id)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, apperr.Conflict("O e-mail já está em uso.")
		}
	}

	updated, err := s.store.Update(ctx, id, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, apperr.NotFound("Cliente não encontrado.")
		case errors.Is(err, ErrDuplicateEmail):
			return nil, apperr.Conflict("O e-mail já está em uso.")
		}
		return nil, err
	}
	return updated, nil
}

// Delete remove o cliente e informa se algo foi de fato removido.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.store.Delete(ctx, id)
}
