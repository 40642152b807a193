package repository

import (
	"context"

	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
)

// AdjustmentHistoryRepository define o porto do histórico de reajustes.
// Log imutável: inserção e listagem, nada de edição ou exclusão.
type AdjustmentHistoryRepository interface {
	Create(ctx context.Context, adjustment *entity.PriceAdjustment) error
	// List devolve o histórico do mais recente para o mais antigo.
	List(ctx context.Context) ([]*entity.PriceAdjustment, error)
}
