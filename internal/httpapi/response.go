package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lojaplena/favoritos/internal/apperr"
)

// MessageBody é o corpo padrão de respostas que carregam apenas uma mensagem.
// Todo erro da plataforma responde neste formato.
type MessageBody struct {
	Message string `json:"message"`
}

// WriteJSON serializa o valor informado com o status desejado.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage responde apenas com {message}.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, MessageBody{Message: message})
}

// WriteError converte o erro em status + {message}. Erros não classificados
// são logados e respondidos como 500 genérico, sem vazar detalhes internos.
func WriteError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Error().Err(err).Msg("erro não tratado")
		WriteMessage(w, http.StatusInternalServerError, "Erro interno no servidor.")
		return
	}
	WriteMessage(w, apperr.Status(appErr), appErr.Message)
}
