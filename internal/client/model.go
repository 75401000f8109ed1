package client

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound é retornado quando nenhum cliente corresponde ao id.
	ErrNotFound = errors.New("cliente não encontrado")
	// ErrDuplicateEmail sinaliza violação da unicidade de e-mail no banco.
	ErrDuplicateEmail = errors.New("e-mail já cadastrado")
)

// Client representa um cliente cadastrado.
type Client struct {
	ID    uuid.UUID `json:"id"`
	Nome  string    `json:"nome"`
	Email string    `json:"email"`
}

// Input contém os campos aceitos na criação e na atualização. A atualização
// é sempre integral: os dois campos são obrigatórios.
type Input struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
}
