package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplyAdjustmentRequest entrada para aplicar um reajuste de preços.
// percent é percentual pleno (10 = +10%) e ponteiro para distinguir
// "ausente" de "0%". No escopo PADRAO o percent é ignorado.
type ApplyAdjustmentRequest struct {
	ScopeType  string           `json:"scopeType" validate:"required,oneof=GLOBAL CATEGORIA PADRAO"`
	Percent    *decimal.Decimal `json:"percent"`
	CategoryID string           `json:"categoryId"`
	Note       string           `json:"note"`
}

// ApplyAdjustmentResponse resultado do reajuste efetivado.
type ApplyAdjustmentResponse struct {
	History          AdjustmentHistoryItem `json:"history"`
	ProductsAffected int64                 `json:"productsAffected"`
}

// AdjustmentCategoryRef referência da categoria no histórico, com o nome
// capturado no momento do reajuste.
type AdjustmentCategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdjustmentHistoryItem entrada do histórico de reajustes. Em PADRAO o
// percent sai como 0 por compatibilidade com o cliente; o scopeType é a
// informação autoritativa ("percentuais variáveis por categoria").
type AdjustmentHistoryItem struct {
	ID        string                 `json:"id"`
	ScopeType string                 `json:"scopeType"`
	Percent   decimal.Decimal        `json:"percent"`
	Category  *AdjustmentCategoryRef `json:"category"`
	Note      string                 `json:"note,omitempty"`
	AppliedBy string                 `json:"appliedBy,omitempty"`
	AppliedAt time.Time              `json:"appliedAt"`
}
