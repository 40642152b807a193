package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardProductCountDTO contadores do catálogo.
type DashboardProductCountDTO struct {
	TotalProducts   int `json:"totalProducts"`
	TotalCategories int `json:"totalCategories"`
}

// DashboardStockValueDTO valor total do estoque (soma de estoque × preço).
type DashboardStockValueDTO struct {
	TotalStockValue decimal.Decimal `json:"totalStockValue"`
}

// DashboardMovementSummaryDTO totais de movimentações.
type DashboardMovementSummaryDTO struct {
	TotalMovements int64 `json:"totalMovements"`
	TotalEntradas  int64 `json:"totalEntradas"`
	TotalSaidas    int64 `json:"totalSaidas"`
}

// DashboardLastProductDTO produto recém-cadastrado exibido no painel.
type DashboardLastProductDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	StockQty  int64           `json:"stockQty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// DashboardOverviewDTO visão geral consumida pela página inicial.
type DashboardOverviewDTO struct {
	ProductCount    DashboardProductCountDTO    `json:"productCount"`
	StockValue      DashboardStockValueDTO      `json:"stockValue"`
	MovementSummary DashboardMovementSummaryDTO `json:"movementSummary"`
	LastProducts    []DashboardLastProductDTO   `json:"lastProducts"`
	BelowMinimum    []ProductBelowMinimumDTO    `json:"belowMinimum"`
}
