package entity

import "time"

// User representa um usuário operador do sistema. A identidade aqui não é
// fronteira de segurança: serve de atribuição (appliedBy) no histórico de
// reajustes e no registro de movimentações.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
