package favorite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// Repository provê acesso ao armazenamento de favoritos. Nenhuma validação
// de negócio vive aqui; o serviço é o dono do fluxo.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria um novo repositório de favoritos.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create insere o par (cliente, produto) e devolve o registro persistido.
func (r *Repository) Create(ctx context.Context, clientID uuid.UUID, productID int) (*Favorite, error) {
	const query = `
        INSERT INTO favorites (client_id, product_id)
        VALUES ($1, $2)
        RETURNING id, client_id, product_id
    `

	row := r.pool.QueryRow(ctx, query, clientID, productID)

	var f Favorite
	if err := row.Scan(&f.ID, &f.ClientID, &f.ProductID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicatePair
		}
		return nil, err
	}
	return &f, nil
}

// Exists verifica se o cliente já favoritou o produto.
func (r *Repository) Exists(ctx context.Context, clientID uuid.UUID, productID int) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM favorites WHERE client_id = $1 AND product_id = $2
        )
    `

	var exists bool
	if err := r.pool.QueryRow(ctx, query, clientID, productID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByClient devolve os favoritos de um cliente.
func (r *Repository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]Favorite, error) {
	const query = `
        SELECT id, client_id, product_id
        FROM favorites
        WHERE client_id = $1
    `

	rows, err := r.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.ClientID, &f.ProductID); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return favorites, nil
}

// DeleteByID remove um favorito e informa se alguma linha foi afetada.
func (r *Repository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM favorites WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByClient remove todos os favoritos do cliente.
func (r *Repository) DeleteByClient(ctx context.Context, clientID uuid.UUID) (bool, error) {
	const query = `DELETE FROM favorites WHERE client_id = $1`

	tag, err := r.pool.Exec(ctx, query, clientID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
