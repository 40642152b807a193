package postgres

import (
	"context"
	"fmt"

	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
)

var _ repository.AdjustmentHistoryRepository = (*AdjustmentHistoryRepo)(nil)

const adjustmentColumns = `id, scope_type, percent, category_id, category_name, note, applied_by, applied_at`

// AdjustmentHistoryRepo implementação do porto AdjustmentHistoryRepository
// sobre PostgreSQL. Log imutável de reajustes aplicados.
type AdjustmentHistoryRepo struct {
	q Querier
}

// NewAdjustmentHistoryRepository constrói o adaptador de persistência do histórico.
func NewAdjustmentHistoryRepository(q Querier) *AdjustmentHistoryRepo {
	return &AdjustmentHistoryRepo{q: q}
}

// Create registra um reajuste aplicado. category_name é um retrato do momento.
func (r *AdjustmentHistoryRepo) Create(ctx context.Context, adjustment *entity.PriceAdjustment) error {
	query := `
		INSERT INTO price_adjustments (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		adjustment.ID, adjustment.ScopeType, adjustment.Percent,
		adjustment.CategoryID, adjustment.CategoryName, adjustment.Note,
		adjustment.AppliedBy, adjustment.AppliedAt,
	)
	if err != nil {
		return fmt.Errorf("insert price adjustment: %w", err)
	}
	return nil
}

// List lista o histórico do mais recente para o mais antigo.
func (r *AdjustmentHistoryRepo) List(ctx context.Context) ([]*entity.PriceAdjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM price_adjustments ORDER BY applied_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list price adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceAdjustment
	for rows.Next() {
		var a entity.PriceAdjustment
		if err := rows.Scan(&a.ID, &a.ScopeType, &a.Percent, &a.CategoryID,
			&a.CategoryName, &a.Note, &a.AppliedBy, &a.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan price adjustment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
