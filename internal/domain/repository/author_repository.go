package repository

import (
	"context"

	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
)

// AuthorRepository define o porto de persistência para Author (DIP).
type AuthorRepository interface {
	Create(ctx context.Context, author *entity.Author) error
	GetByID(ctx context.Context, id string) (*entity.Author, error)
	Update(ctx context.Context, author *entity.Author) error
	List(ctx context.Context) ([]*entity.Author, error)
	Delete(ctx context.Context, id string) error
}
