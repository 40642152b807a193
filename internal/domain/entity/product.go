package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de produto do catálogo.
const (
	ProductTypeLivro   = "LIVRO"
	ProductTypeRevista = "REVISTA"
	ProductTypeOutro   = "OUTRO"
)

// Product representa um item do catálogo da livraria.
// StockQty só muda via movimentações; Price só muda via reajustes.
type Product struct {
	ID          string
	SKU         string // código único de estoque
	Name        string
	ProductType string // ver constantes ProductType*
	Price       decimal.Decimal
	Unit        string // unidade de medida (rótulo de exibição)
	StockQty    int64  // invariante: 0 <= StockQty <= 99999
	MinQty      int64  // limite mínimo, sempre > 0
	MaxQty      int64  // limite máximo; 0 = sem limite superior
	CategoryID  string
	AuthorIDs   []string
	Publisher   string
	ISBN        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasMaxQty informa se o produto tem limite superior de estoque configurado.
func (p *Product) HasMaxQty() bool { return p.MaxQty > 0 }
