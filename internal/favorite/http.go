package favorite

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lojaplena/favoritos/internal/httpapi"
)

// Handler expõe o fluxo de favoritos.
type Handler struct {
	service *Service
}

// NewHandler cria o handler HTTP de favoritos.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registra as rotas do serviço.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/{clientId}", h.ListByClient)
	r.Delete("/{clientId}", h.DeleteByClient)
	r.Delete("/item/{favoriteId}", h.DeleteByID)
}

type createPayload struct {
	ClientID  any `json:"clientId"`
	ProductID any `json:"productId"`
}

type createResponse struct {
	Message    string    `json:"message"`
	FavoriteID uuid.UUID `json:"favoriteId"`
	ClientID   uuid.UUID `json:"clientId"`
	ProductID  int       `json:"productId"`
}

// Create valida a forma do corpo e delega o fluxo ao serviço.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var payload createPayload
	if err := dec.Decode(&payload); err != nil {
		httpapi.WriteMessage(w, http.StatusBadRequest, `Os campos "clientId" e "productId" são obrigatórios.`)
		return
	}

	clientStr, clientIsString := payload.ClientID.(string)
	if payload.ProductID == nil || payload.ClientID == nil || (clientIsString && clientStr == "") {
		httpapi.WriteMessage(w, http.StatusBadRequest, `Os campos "clientId" e "productId" são obrigatórios.`)
		return
	}

	productNum, ok := payload.ProductID.(json.Number)
	if !ok {
		httpapi.WriteMessage(w, http.StatusBadRequest, "productId deve ser um número.")
		return
	}
	productID, err := productNum.Int64()
	if err != nil {
		httpapi.WriteMessage(w, http.StatusBadRequest, "productId deve ser um número.")
		return
	}

	if !clientIsString {
		httpapi.WriteMessage(w, http.StatusBadRequest, "clientId deve ser uma string.")
		return
	}

	created, err := h.service.Create(r.Context(), clientStr, int(productID))
	if err != nil {
		httpapi.WriteError(w, err)
		return
	}

	httpapi.WriteJSON(w, http.StatusCreated, createResponse{
		Message:    "Produto adicionado aos favoritos com sucesso.",
		FavoriteID: created.ID,
		ClientID:   created.ClientID,
		ProductID:  created.ProductID,
	})
}

// ListByClient devolve os detalhes dos produtos favoritados.
func (h *Handler) ListByClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientId")

	products, err := h.service.ListProducts(r.Context(), clientID)
	if err != nil {
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, products)
}

// DeleteByClient remove todos os favoritos do cliente. "Nada para deletar"
// responde 200 com mensagem própria; só a remoção pontual usa 404.
func (h *Handler) DeleteByClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientId")

	deleted, err := h.service.DeleteByClient(r.Context(), clientID)
	if err != nil {
		httpapi.WriteError(w, err)
		return
	}

	if deleted {
		httpapi.WriteMessage(w, http.StatusOK,
			fmt.Sprintf("Favorito(s) do cliente %s foram deletados.", clientID))
		return
	}
	httpapi.WriteMessage(w, http.StatusOK,
		fmt.Sprintf("Nenhum favorito encontrado para deletar para o cliente %s.", clientID))
}

// DeleteByID remove um favorito específico.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	favoriteID := chi.URLParam(r, "favoriteId")

	deleted, err := h.service.DeleteByID(r.Context(), favoriteID)
	if err != nil {
		httpapi.WriteError(w, err)
		return
	}

	if !deleted {
		httpapi.WriteMessage(w, http.StatusNotFound,
			fmt.Sprintf("Registro de favorito com ID %s não encontrado.", favoriteID))
		return
	}
	httpapi.WriteMessage(w, http.StatusOK,
		fmt.Sprintf("Favorito com ID %s deletado com sucesso.", favoriteID))
}
