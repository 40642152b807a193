package entity

import "time"

// Author representa um autor do catálogo.
// Produtos referenciam autores por id; um autor não pode ser excluído
// enquanto algum produto o referenciar.
type Author struct {
	ID          string
	FullName    string
	Nationality string
	Biography   string     // opcional
	BirthDate   *time.Time // opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
