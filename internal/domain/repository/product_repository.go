package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
)

// ProductRepository define o porto de persistência para Product (DIP).
// StockQty e Price não passam por Update: estoque muda via UpdateStock (motor
// de movimentações) e preço via os métodos AdjustPrices* (motor de reajustes).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetForUpdate carrega o produto bloqueando a linha (SELECT FOR UPDATE).
	// Só faz sentido dentro de uma transação.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStock(ctx context.Context, productID string, stockQty int64) error
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error

	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)

	// Reajustes em lote: price = price * (1 + percent/100) direto no banco,
	// dentro da transação do chamador. Devolvem o número de produtos afetados.
	AdjustPricesGlobal(ctx context.Context, percent decimal.Decimal) (int64, error)
	AdjustPricesByCategory(ctx context.Context, categoryID string, percent decimal.Decimal) (int64, error)
	// AdjustPricesByCategoryDefaults aplica a cada produto o percentual padrão
	// da sua categoria; produto sem categoria fica intacto (0%).
	AdjustPricesByCategoryDefaults(ctx context.Context) (int64, error)
}
