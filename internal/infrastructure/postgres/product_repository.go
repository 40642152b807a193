package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/bibliostock/bibliostock-api/internal/domain"
	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, product_type, price, unit, stock_qty, min_qty, max_qty, category_id, author_ids, publisher, isbn, created_at, updated_at`

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência para produtos. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.ProductType, &p.Price, &p.Unit,
		&p.StockQty, &p.MinQty, &p.MaxQty, &p.CategoryID, &p.AuthorIDs,
		&p.Publisher, &p.ISBN, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste um novo produto com o estoque inicial informado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.ProductType, product.Price,
		product.Unit, product.StockQty, product.MinQty, product.MaxQty,
		product.CategoryID, product.AuthorIDs, product.Publisher, product.ISBN,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySKU obtém um produto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// GetForUpdate obtém um produto bloqueando a linha. Usar dentro de transação.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// Update atualiza um produto existente. Não toca em price nem stock_qty
// (preço muda via reajustes, estoque via movimentações).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, product_type = $3, unit = $4, min_qty = $5, max_qty = $6,
			category_id = $7, author_ids = $8, publisher = $9, isbn = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.ProductType, product.Unit,
		product.MinQty, product.MaxQty, product.CategoryID, product.AuthorIDs,
		product.Publisher, product.ISBN, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock atualiza apenas o saldo do produto (usado pelo motor de movimentações).
func (r *ProductRepo) UpdateStock(ctx context.Context, productID string, stockQty int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET stock_qty = $2, updated_at = now() WHERE id = $1`,
		productID, stockQty,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// List lista todos os produtos, mais recentes primeiro.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete remove um produto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// CountByCategory conta quantos produtos apontam para a categoria.
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM products WHERE category_id = $1`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return n, nil
}

// CountByAuthor conta quantos produtos referenciam o autor.
func (r *ProductRepo) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM products WHERE $1 = ANY(author_ids)`, authorID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by author: %w", err)
	}
	return n, nil
}

// AdjustPricesGlobal reajusta todos os preços em lote no banco.
func (r *ProductRepo) AdjustPricesGlobal(ctx context.Context, percent decimal.Decimal) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET price = price * (1 + $1::numeric / 100), updated_at = now()`,
		percent,
	)
	if err != nil {
		return 0, fmt.Errorf("adjust prices global: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// AdjustPricesByCategory reajusta os preços dos produtos de uma categoria.
func (r *ProductRepo) AdjustPricesByCategory(ctx context.Context, categoryID string, percent decimal.Decimal) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET price = price * (1 + $2::numeric / 100), updated_at = now() WHERE category_id = $1`,
		categoryID, percent,
	)
	if err != nil {
		return 0, fmt.Errorf("adjust prices by category: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// AdjustPricesByCategoryDefaults aplica a cada produto o percentual padrão da
// sua categoria. Produto sem categoria fica intacto.
func (r *ProductRepo) AdjustPricesByCategoryDefaults(ctx context.Context) (int64, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products p
		SET price = p.price * (1 + c.default_adjustment_percent / 100), updated_at = now()
		FROM categories c
		WHERE p.category_id = c.id`,
	)
	if err != nil {
		return 0, fmt.Errorf("adjust prices by category defaults: %w", err)
	}
	return cmd.RowsAffected(), nil
}
