package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrUserNotFound      = errors.New("usuário não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("não autorizado")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrInsufficientStock = errors.New("estoque insuficiente")

	// ErrReferenced bloqueia exclusões enquanto outra entidade referencia o alvo
	// (categoria/autor com produtos; produto com movimentações).
	ErrReferenced = errors.New("recurso referenciado por outras entidades")
)
