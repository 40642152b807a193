package dto

import "time"

// AuthorRequest entrada para criar/atualizar um autor.
// birthDate no formato "2006-01-02"; vazio = não informado.
type AuthorRequest struct {
	FullName    string `json:"fullName" validate:"required,min=1,max=200"`
	Nationality string `json:"nationality" validate:"required,min=1,max=100"`
	Biography   string `json:"biography"`
	BirthDate   string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
}

// AuthorResponse saída de um autor.
type AuthorResponse struct {
	ID          string     `json:"id"`
	FullName    string     `json:"fullName"`
	Nationality string     `json:"nationality"`
	Biography   string     `json:"biography,omitempty"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
