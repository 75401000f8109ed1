package gateway

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lojaplena/favoritos/internal/auth"
	"github.com/lojaplena/favoritos/internal/httpapi"
)

// LoginHandler emite tokens de acesso. Não há credencial persistida: o
// chamador declara identidade e papéis, e o token assinado delimita o que o
// gateway aceita dali em diante.
type LoginHandler struct {
	jwtManager *auth.JWTManager
}

// NewLoginHandler cria o emissor de tokens.
func NewLoginHandler(jwtManager *auth.JWTManager) *LoginHandler {
	return &LoginHandler{jwtManager: jwtManager}
}

type loginResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    auth.Identity `json:"user"`
}

// Login valida o payload e devolve o token com a identidade ecoada.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var identity auth.Identity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		httpapi.WriteMessage(w, http.StatusBadRequest, "Id, Nome e Roles são obrigatórios.")
		return
	}

	if strings.TrimSpace(identity.ID) == "" || strings.TrimSpace(identity.Name) == "" || len(identity.Roles) == 0 {
		httpapi.WriteMessage(w, http.StatusBadRequest, "Id, Nome e Roles são obrigatórios.")
		return
	}

	if !auth.RolesValid(identity.Roles) {
		httpapi.WriteMessage(w, http.StatusBadRequest,
			"Roles inválidas. As roles permitidas são: "+auth.JoinRoles(auth.ValidRoles)+".")
		return
	}

	token, err := h.jwtManager.Generate(identity)
	if err != nil {
		httpapi.WriteError(w, err)
		return
	}

	httpapi.WriteJSON(w, http.StatusOK, loginResponse{
		Message: "Login efetuado com sucesso.",
		Token:   token,
		User:    identity,
	})
}
