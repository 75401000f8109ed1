package gateway

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lojaplena/favoritos/internal/auth"
)

const testSecret = "segredo-de-teste-com-tamanho-suficiente"

func postLogin(t *testing.T, handler *LoginHandler, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", &buf)
	rec := httptest.NewRecorder()
	handler.Login(rec, req)
	return rec
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	manager := auth.NewJWTManager(testSecret, time.Hour)
	handler := NewLoginHandler(manager)

	rec := postLogin(t, handler, map[string]any{
		"id":    "u1",
		"name":  "Alice",
		"roles": []string{"write"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("esperava 200, veio %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string        `json:"message"`
		Token   string        `json:"token"`
		User    auth.Identity `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Login efetuado com sucesso." {
		t.Fatalf("mensagem inesperada: %q", resp.Message)
	}
	if resp.User.ID != "u1" || resp.User.Name != "Alice" {
		t.Fatalf("eco da identidade divergente: %+v", resp.User)
	}

	identity, err := manager.ParseAndValidate(resp.Token)
	if err != nil {
		t.Fatalf("token emitido não valida: %v", err)
	}
	if identity.ID != "u1" || len(identity.Roles) != 1 || identity.Roles[0] != "write" {
		t.Fatalf("claims divergentes: %+v", identity)
	}
}

func TestLoginValidation(t *testing.T) {
	handler := NewLoginHandler(auth.NewJWTManager(testSecret, time.Hour))

	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"sem id", map[string]any{"name": "Alice", "roles": []string{"read"}}, "Id, Nome e Roles são obrigatórios."},
		{"sem nome", map[string]any{"id": "u1", "roles": []string{"read"}}, "Id, Nome e Roles são obrigatórios."},
		{"roles vazias", map[string]any{"id": "u1", "name": "Alice", "roles": []string{}}, "Id, Nome e Roles são obrigatórios."},
		{"sem roles", map[string]any{"id": "u1", "name": "Alice"}, "Id, Nome e Roles são obrigatórios."},
		{"role desconhecida", map[string]any{"id": "u1", "name": "Alice", "roles": []string{"admin"}}, "Roles inválidas. As roles permitidas são: read, write."},
		{"role parcial", map[string]any{"id": "u1", "name": "Alice", "roles": []string{"read", "root"}}, "Roles inválidas. As roles permitidas são: read, write."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postLogin(t, handler, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("esperava 400, veio %d", rec.Code)
			}
			var body struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Message != tc.message {
				t.Fatalf("mensagem inesperada: %q", body.Message)
			}
		})
	}
}
