package client

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lojaplena/favoritos/internal/httpapi"
)

// Handler expõe o CRUD de clientes.
type Handler struct {
	service *Service
}

// NewHandler cria o handler HTTP de clientes.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registra as rotas do serviço.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// Create cadastra um novo cliente.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpapi.WriteMessage(w, http.StatusBadRequest, "Campos nome e email são obrigatórios.")
		return
	}
	if strings.TrimSpace(input.Nome) == "" || strings.TrimSpace(input.Email) == "" {
		httpapi.WriteMessage(w, http.StatusBadRequest, "Campos nome e email são obrigatórios.")
		return
	}

	created, err := h.service.Create(r.Context(), input)
	if err != nil {
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, created)
}

// List devolve todos os clientes.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.List(r.Context())
	if err != nil {
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, clients)
}

// GetByID devolve um cliente pelo id.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.WriteMessage(w, http.StatusNotFound, "Cliente não encontrado.")
		return
	}

	found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, found)
}

// Update substitui nome e e-mail do cliente. Atualização parcial é rejeitada.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.WriteMessage(w, http.StatusNotFound, "Cliente não encontrado.")
		return
	}

	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpapi.WriteMessage(w, http.StatusBadRequest, "Nome e email são obrigatórios.")
		return
	}
	if strings.TrimSpace(input.Nome) == "" || strings.TrimSpace(input.Email) == "" {
		httpapi.WriteMessage(w, http.StatusBadRequest, "Nome e email são obrigatórios.")
		return
	}

	updated, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, updated)
}

// Delete remove o cliente pelo id.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.WriteMessage(w, http.StatusNotFound, "Cliente não encontrado.")
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, err)
		return
	}
	if !deleted {
		httpapi.WriteMessage(w, http.StatusNotFound, "Cliente não encontrado.")
		return
	}
	httpapi.WriteMessage(w, http.StatusOK, "Cliente deletado com sucesso.")
}
