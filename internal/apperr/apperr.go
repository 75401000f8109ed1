package apperr

import (
	"errors"
	"net/http"
)

// Kind classifica falhas conhecidas da plataforma.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindUnavailable
	KindBadGateway
)

// Error carrega a classificação e a mensagem exibida ao cliente.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New cria um erro classificado.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// BadRequest indica entrada malformada ou inválida.
func BadRequest(message string) *Error { return New(KindBadRequest, message) }

// Unauthenticated indica token ausente ou expirado.
func Unauthenticated(message string) *Error { return New(KindUnauthenticated, message) }

// Forbidden indica identidade válida sem permissão suficiente.
func Forbidden(message string) *Error { return New(KindForbidden, message) }

// NotFound indica registro ou referência ausente.
func NotFound(message string) *Error { return New(KindNotFound, message) }

// Conflict indica violação de unicidade.
func Conflict(message string) *Error { return New(KindConflict, message) }

// Unavailable indica colaborador externo inacessível.
func Unavailable(message string) *Error { return New(KindUnavailable, message) }

// BadGateway indica falha de transporte no despacho reverso.
func BadGateway(message string) *Error { return New(KindBadGateway, message) }

// Status devolve o código HTTP correspondente ao erro. Erros não
// classificados viram 500 com mensagem genérica no topo da pilha.
func Status(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// IsKind verifica se err carrega a classificação informada.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Kind == kind
}
