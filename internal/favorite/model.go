package favorite

import (
	"errors"

	"github.com/google/uuid"
)

// ErrDuplicatePair sinaliza violação da unicidade (cliente, produto) no banco.
var ErrDuplicatePair = errors.New("favorito já cadastrado")

// Favorite liga um cliente a um produto do catálogo externo.
type Favorite struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"clientId"`
	ProductID int       `json:"productId"`
}

// Product espelha o registro devolvido pelo catálogo de produtos.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}
