package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/pricing"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApplyPercent_Aumento(t *testing.T) {
	// 100 × (1 + 5/100) = 105
	got := pricing.ApplyPercent(dec("100"), dec("5"))
	assert.True(t, got.Equal(dec("105")), "esperado 105, obtido %s", got)

	// 50 × (1 + 5/100) = 52.50
	got = pricing.ApplyPercent(dec("50"), dec("5"))
	assert.True(t, got.Equal(dec("52.5")), "esperado 52.5, obtido %s", got)
}

func TestApplyPercent_Reducao(t *testing.T) {
	got := pricing.ApplyPercent(dec("200"), dec("-10"))
	assert.True(t, got.Equal(dec("180")), "esperado 180, obtido %s", got)
}

func TestApplyPercent_ZeroEhNoOp(t *testing.T) {
	got := pricing.ApplyPercent(dec("34.90"), dec("0"))
	assert.True(t, got.Equal(dec("34.90")))
}

// O percentual é pleno: 10 significa +10%, não ×10.
func TestApplyPercent_PercentualPleno(t *testing.T) {
	got := pricing.ApplyPercent(dec("100"), dec("10"))
	assert.True(t, got.Equal(dec("110")), "esperado 110, obtido %s", got)
}

func TestProjectedPrice_ComESemCategoria(t *testing.T) {
	categories := map[string]*entity.Category{
		"cat-1": {ID: "cat-1", Name: "Ficção", DefaultAdjustmentPercent: dec("10")},
	}

	comCategoria := &entity.Product{Price: dec("40"), CategoryID: "cat-1"}
	assert.True(t, pricing.ProjectedPrice(comCategoria, categories).Equal(dec("44")))

	// Produto sem categoria projeta com 0%
	semCategoria := &entity.Product{Price: dec("40")}
	assert.True(t, pricing.ProjectedPrice(semCategoria, categories).Equal(dec("40")))
}

func TestValidScope(t *testing.T) {
	assert.True(t, pricing.ValidScope(entity.AdjustmentScopeGlobal))
	assert.True(t, pricing.ValidScope(entity.AdjustmentScopeCategoria))
	assert.True(t, pricing.ValidScope(entity.AdjustmentScopePadrao))
	assert.False(t, pricing.ValidScope(""))
	assert.False(t, pricing.ValidScope("global"))
	assert.False(t, pricing.ValidScope("TUDO"))
}
