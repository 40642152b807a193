package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bibliostock/bibliostock-api/internal/domain"
	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
)

var _ repository.AuthorRepository = (*AuthorRepo)(nil)

const authorColumns = `id, full_name, nationality, biography, birth_date, created_at, updated_at`

// AuthorRepo implementação do porto AuthorRepository sobre PostgreSQL.
type AuthorRepo struct {
	q Querier
}

// NewAuthorRepository constrói o adaptador de persistência para autores.
func NewAuthorRepository(q Querier) *AuthorRepo {
	return &AuthorRepo{q: q}
}

func scanAuthor(row pgx.Row) (*entity.Author, error) {
	var a entity.Author
	err := row.Scan(
		&a.ID, &a.FullName, &a.Nationality, &a.Biography,
		&a.BirthDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste um novo autor.
func (r *AuthorRepo) Create(ctx context.Context, author *entity.Author) error {
	query := `
		INSERT INTO authors (` + authorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		author.ID, author.FullName, author.Nationality, author.Biography,
		author.BirthDate, author.CreatedAt, author.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert author: %w", err)
	}
	return nil
}

// GetByID obtém um autor por ID.
func (r *AuthorRepo) GetByID(ctx context.Context, id string) (*entity.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`
	a, err := scanAuthor(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get author: %w", err)
	}
	return a, nil
}

// Update atualiza um autor existente.
func (r *AuthorRepo) Update(ctx context.Context, author *entity.Author) error {
	query := `
		UPDATE authors SET full_name = $2, nationality = $3, biography = $4, birth_date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		author.ID, author.FullName, author.Nationality, author.Biography,
		author.BirthDate, author.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update author: %w", err)
	}
	return nil
}

// List lista todos os autores, mais recentes primeiro.
func (r *AuthorRepo) List(ctx context.Context) ([]*entity.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Delete remove um autor por ID.
func (r *AuthorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}
