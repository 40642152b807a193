package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bibliostock/bibliostock-api/internal/application/dto"
	"github.com/bibliostock/bibliostock-api/internal/domain"
	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
)

// AuthorUseCase casos de uso CRUD de autores.
type AuthorUseCase struct {
	repo        repository.AuthorRepository
	productRepo repository.ProductRepository
}

// NewAuthorUseCase constrói o caso de uso.
func NewAuthorUseCase(repo repository.AuthorRepository, productRepo repository.ProductRepository) *AuthorUseCase {
	return &AuthorUseCase{repo: repo, productRepo: productRepo}
}

func parseBirthDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}

// Create cadastra um autor.
func (uc *AuthorUseCase) Create(ctx context.Context, in dto.AuthorRequest) (*dto.AuthorResponse, error) {
	birthDate, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	author := &entity.Author{
		ID:          uuid.New().String(),
		FullName:    in.FullName,
		Nationality: in.Nationality,
		Biography:   in.Biography,
		BirthDate:   birthDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, author); err != nil {
		return nil, err
	}
	return toAuthorResponse(author), nil
}

// GetByID devolve um autor por ID; nil quando não existe.
func (uc *AuthorUseCase) GetByID(ctx context.Context, id string) (*dto.AuthorResponse, error) {
	author, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, nil
	}
	return toAuthorResponse(author), nil
}

// List devolve todos os autores.
func (uc *AuthorUseCase) List(ctx context.Context) ([]dto.AuthorResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuthorResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAuthorResponse(a))
	}
	return items, nil
}

// Update atualiza um autor.
func (uc *AuthorUseCase) Update(ctx context.Context, id string, in dto.AuthorRequest) (*dto.AuthorResponse, error) {
	author, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, nil
	}
	birthDate, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	author.FullName = in.FullName
	author.Nationality = in.Nationality
	author.Biography = in.Biography
	author.BirthDate = birthDate
	author.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, author); err != nil {
		return nil, err
	}
	return toAuthorResponse(author), nil
}

// Delete exclui um autor. Bloqueado enquanto o conjunto de autores de algum
// produto contiver o id — verificado na fronteira autoritativa.
func (uc *AuthorUseCase) Delete(ctx context.Context, id string) error {
	author, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if author == nil {
		return domain.ErrNotFound
	}
	count, err := uc.productRepo.CountByAuthor(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrReferenced
	}
	return uc.repo.Delete(ctx, id)
}

func toAuthorResponse(a *entity.Author) *dto.AuthorResponse {
	if a == nil {
		return nil
	}
	return &dto.AuthorResponse{
		ID:          a.ID,
		FullName:    a.FullName,
		Nationality: a.Nationality,
		Biography:   a.Biography,
		BirthDate:   a.BirthDate,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
