package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibliostock/bibliostock-api/internal/application/inventory"
	"github.com/bibliostock/bibliostock-api/internal/application/pricing"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação para o motor de movimentações: estoque e registro
// da movimentação são efetivados juntos (Commit) ou nada é (Rollback).
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// PricingTxRunner executa callbacks do motor de reajustes dentro de uma
// transação: lote de preços e entrada de histórico são efetivados juntos.
type PricingTxRunner struct {
	pool *pgxpool.Pool
}

// NewPricingTxRunner constrói o runner de reajustes com o pool.
func NewPricingTxRunner(pool *pgxpool.Pool) *PricingTxRunner {
	return &PricingTxRunner{pool: pool}
}

var _ pricing.TxRunner = (*PricingTxRunner)(nil)

// Run inicia a transação e passa repositórios atados a ela.
func (r *PricingTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	historyRepo repository.AdjustmentHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewAdjustmentHistoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
