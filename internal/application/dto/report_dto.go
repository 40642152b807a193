package dto

import "github.com/shopspring/decimal"

// ProductPriceDTO linha do relatório de preços. ISBN maiúsculo por
// compatibilidade com o cliente.
type ProductPriceDTO struct {
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	ISBN             string          `json:"ISBN"`
	PriceUnit        decimal.Decimal `json:"priceUnit"`
	PriceWithPercent decimal.Decimal `json:"priceWithPercent"`
}

// BalanceItemDTO linha do balanço: totalValue = stockQty * price.
type BalanceItemDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	StockQty   int64           `json:"stockQty"`
	Price      decimal.Decimal `json:"price"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// BalanceResponseDTO balanço completo com o total geral.
type BalanceResponseDTO struct {
	Items      []BalanceItemDTO `json:"items"`
	TotalValue decimal.Decimal  `json:"totalValue"`
}

// ProductBelowMinimumDTO produto abaixo do limite mínimo.
type ProductBelowMinimumDTO struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	CategoryName string `json:"categoryName"`
	MinQty       int64  `json:"minQty"`
	StockQty     int64  `json:"stockQty"`
	Deficit      int64  `json:"deficit"`
}

// ProductsPerCategoryDTO contagem de produtos por categoria.
type ProductsPerCategoryDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}

// MovementHistoryItemDTO somatório de movimentações de um produto.
type MovementHistoryItemDTO struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Entries     int64  `json:"entries"`
	Exits       int64  `json:"exits"`
	Saldo       int64  `json:"saldo"`
}

// MovementExtremeDTO produto com mais entradas ou mais saídas.
type MovementExtremeDTO struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Total       int64  `json:"total"`
}

// MovementsHistoryReportDTO resumo de movimentações com os extremos
// (nil quando não há movimentações).
type MovementsHistoryReportDTO struct {
	Movements   []MovementHistoryItemDTO `json:"movements"`
	MostEntries *MovementExtremeDTO      `json:"mostEntries"`
	MostExits   *MovementExtremeDTO      `json:"mostExits"`
}
