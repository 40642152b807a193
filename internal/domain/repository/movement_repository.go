package repository

import (
	"context"

	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
)

// MovementRepository define o porto de persistência para movimentações.
// Log append-only: sem Update nem Delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// List devolve as movimentações da mais recente para a mais antiga.
	// movementType vazio lista todas; "ENTRADA"/"SAIDA" filtram por tipo.
	List(ctx context.Context, movementType string) ([]*entity.Movement, error)
	CountByProduct(ctx context.Context, productID string) (int64, error)
}
