package auth

import "strings"

// Papéis aceitos pela plataforma. A checagem de permissão usa semântica OR:
// basta um papel em comum entre identidade e operação.
const (
	RoleRead  = "read"
	RoleWrite = "write"
)

// ValidRoles lista os papéis permitidos na ordem exibida em mensagens.
var ValidRoles = []string{RoleRead, RoleWrite}

// RolesValid verifica se todos os papéis informados são conhecidos.
func RolesValid(roles []string) bool {
	for _, role := range roles {
		known := false
		for _, valid := range ValidRoles {
			if role == valid {
				known = true
				break
			}
		}
		if !known {
			return false
		}
	}
	return true
}

// HasAnyRole verifica interseção entre os papéis da identidade e os exigidos.
func HasAnyRole(identityRoles, required []string) bool {
	for _, role := range identityRoles {
		for _, want := range required {
			if role == want {
				return true
			}
		}
	}
	return false
}

// JoinRoles formata papéis para mensagens de erro.
func JoinRoles(roles []string) string {
	return strings.Join(roles, ", ")
}
