package client

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// Repository provê acesso ao armazenamento de clientes.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria um novo repositório de clientes.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create insere um novo cliente e devolve o registro persistido.
func (r *Repository) Create(ctx context.Context, input Input) (*Client, error) {
	const query = `
        INSERT INTO clients (nome, email)
        VALUES ($1, $2)
        RETURNING id, nome, email
    `

	row := r.pool.QueryRow(ctx, query, input.Nome, input.Email)

	var c Client
	if err := row.Scan(&c.ID, &c.Nome, &c.Email); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &c, nil
}

// GetByID busca cliente pelo identificador.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	const query = `
        SELECT id, nome, email
        FROM clients
        WHERE id = $1
    `

	row := r.pool.QueryRow(ctx, query, id)

	var c Client
	if err := row.Scan(&c.ID, &c.Nome, &c.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List devolve todos os clientes ordenados por nome.
func (r *Repository) List(ctx context.Context) ([]Client, error) {
	const query = `
        SELECT id, nome, email
        FROM clients
        ORDER BY nome ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Nome, &c.Email); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return clients, nil
}

// EmailInUse verifica se o e-mail pertence a um cliente diferente do informado.
// Na criação, excludeID é uuid.Nil e compara contra todos os registros.
func (r *Repository) EmailInUse(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM clients WHERE email = $1 AND id <> $2
        )
    `

	var inUse bool
	if err := r.pool.QueryRow(ctx, query, email, excludeID).Scan(&inUse); err != nil {
		return false, err
	}
	return inUse, nil
}

// Update substitui nome e e-mail do cliente.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, input Input) (*Client, error) {
	const query = `
        UPDATE clients
        SET nome = $2, email = $3
        WHERE id = $1
        RETURNING id, nome, email
    `

	row := r.pool.QueryRow(ctx, query, id, input.Nome, input.Email)

	var c Client
	if err := row.Scan(&c.ID, &c.Nome, &c.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &c, nil
}

// Delete remove o cliente e informa se alguma linha foi afetada.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM clients WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
