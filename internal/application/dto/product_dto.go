package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar um produto.
// stockQty aqui é apenas o estoque inicial; depois disso só muda via
// movimentações. minQty deve ser positivo; maxQty 0 = sem limite superior.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	ProductType string          `json:"productType" validate:"required,oneof=LIVRO REVISTA OUTRO"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	StockQty    int64           `json:"stockQty"`
	MinQty      int64           `json:"minQty"`
	MaxQty      int64           `json:"maxQty"`
	CategoryID  string          `json:"categoryId" validate:"required"`
	AuthorIDs   []string        `json:"authorIds"`
	Publisher   string          `json:"publisher"`
	ISBN        string          `json:"isbn"`
}

// UpdateProductRequest entrada para atualizar um produto.
// Sem price nem stockQty: preço muda via reajustes, estoque via movimentações.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	ProductType *string  `json:"productType" validate:"omitempty,oneof=LIVRO REVISTA OUTRO"`
	Unit        *string  `json:"unit"`
	MinQty      *int64   `json:"minQty"`
	MaxQty      *int64   `json:"maxQty"`
	CategoryID  *string  `json:"categoryId"`
	AuthorIDs   []string `json:"authorIds"`
	Publisher   *string  `json:"publisher"`
	ISBN        *string  `json:"isbn"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	ProductType string          `json:"productType"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	StockQty    int64           `json:"stockQty"`
	MinQty      int64           `json:"minQty"`
	MaxQty      int64           `json:"maxQty"`
	CategoryID  string          `json:"categoryId"`
	AuthorIDs   []string        `json:"authorIds"`
	Publisher   string          `json:"publisher"`
	ISBN        string          `json:"isbn"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
