package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired distingue expiração de qualquer outra falha de validação.
var ErrTokenExpired = errors.New("token expirado")

// ErrTokenInvalid cobre assinatura inválida, token malformado ou claims ilegíveis.
var ErrTokenInvalid = errors.New("token inválido")

// Identity representa o usuário autenticado carregado pelo token.
type Identity struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// Claims representa as informações presentes em um JWT de acesso.
type Claims struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTManager encapsula geração e validação de tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager cria o gerenciador com segredo e TTL configurados.
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

// Generate cria um JWT HS256 com validade fixa para a identidade informada.
func (m *JWTManager) Generate(identity Identity) (string, error) {
	now := time.Now().UTC()

	claims := Claims{
		Name:  identity.Name,
		Roles: identity.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseAndValidate verifica assinatura e expiração e devolve a identidade.
func (m *JWTManager) ParseAndValidate(tokenString string) (*Identity, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return &Identity{ID: claims.Subject, Name: claims.Name, Roles: claims.Roles}, nil
}
