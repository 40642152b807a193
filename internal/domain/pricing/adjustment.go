// Package pricing implementa o cálculo puro de reajuste de preços
// (serviço de domínio, sem efeitos colaterais).
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// ApplyPercent devolve price * (1 + percent/100). O percentual é pleno
// (10 = +10%, -5 = -5%); nenhum arredondamento é aplicado aqui — as camadas
// de exibição formatam com 2 casas.
func ApplyPercent(price, percent decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(1).Add(percent.Div(oneHundred)))
}

// ProjectedPrice devolve o preço do produto após aplicar o percentual padrão
// da sua categoria — uma projeção, não um preço efetivado. Produto sem
// categoria projeta com 0%.
func ProjectedPrice(p *entity.Product, categories map[string]*entity.Category) decimal.Decimal {
	cat := categories[p.CategoryID]
	if cat == nil {
		return p.Price
	}
	return ApplyPercent(p.Price, cat.DefaultAdjustmentPercent)
}

// ValidScope informa se s é um escopo de reajuste conhecido.
func ValidScope(s string) bool {
	switch s {
	case entity.AdjustmentScopeGlobal, entity.AdjustmentScopeCategoria, entity.AdjustmentScopePadrao:
		return true
	}
	return false
}
