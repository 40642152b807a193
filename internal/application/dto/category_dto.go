package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest entrada para criar/atualizar uma categoria.
// defaultAdjustmentPercent é percentual pleno (5 = 5%) e pode ser negativo.
type CategoryRequest struct {
	Name                     string          `json:"name" validate:"required,min=1,max=200"`
	Size                     string          `json:"size" validate:"required,oneof=Pequeno Médio Grande"`
	PackagingType            string          `json:"packagingType" validate:"required,oneof=Papelão Plástico Vidro Lata"`
	DefaultAdjustmentPercent decimal.Decimal `json:"defaultAdjustmentPercent"`
}

// CategoryResponse saída de uma categoria.
type CategoryResponse struct {
	ID                       string          `json:"id"`
	Name                     string          `json:"name"`
	Size                     string          `json:"size"`
	PackagingType            string          `json:"packagingType"`
	DefaultAdjustmentPercent decimal.Decimal `json:"defaultAdjustmentPercent"`
	CreatedAt                time.Time       `json:"createdAt"`
	UpdatedAt                time.Time       `json:"updatedAt"`
}
