package postgres

import (
	"context"
	"fmt"

	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, product_id, product_name, type, quantity, note, movement_date, created_by`

// MovementRepo implementação do porto MovementRepository sobre PostgreSQL.
// A tabela é um log append-only: nenhum UPDATE nem DELETE passa por aqui.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador de persistência para movimentações.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create registra uma movimentação. product_name é um retrato do momento:
// não acompanha renomeações nem exclusões do produto.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.ProductName, movement.Type,
		movement.Quantity, movement.Note, movement.Date, movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List lista movimentações da mais recente para a mais antiga.
// movementType vazio devolve todas; ENTRADA/SAIDA filtram por tipo.
func (r *MovementRepo) List(ctx context.Context, movementType string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements`
	args := []any{}
	if movementType != "" {
		query += ` WHERE type = $1`
		args = append(args, movementType)
	}
	query += ` ORDER BY movement_date DESC, id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Type,
			&m.Quantity, &m.Note, &m.Date, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByProduct conta as movimentações de um produto (proteção de exclusão).
func (r *MovementRepo) CountByProduct(ctx context.Context, productID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM movements WHERE product_id = $1`, productID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements by product: %w", err)
	}
	return n, nil
}
