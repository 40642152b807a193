package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bibliostock/bibliostock-api/internal/domain/stock"
)

func TestEvaluateAlert_AbaixoDoMinimo(t *testing.T) {
	assert.Equal(t, stock.AlertBelowMin, stock.EvaluateAlert(3, 5, 0))
	assert.Equal(t, stock.AlertBelowMin, stock.EvaluateAlert(0, 1, 100))
}

func TestEvaluateAlert_AcimaDoMaximo(t *testing.T) {
	assert.Equal(t, stock.AlertAboveMax, stock.EvaluateAlert(101, 5, 100))
}

func TestEvaluateAlert_SemAlerta(t *testing.T) {
	// Igual ao mínimo não dispara
	assert.Equal(t, stock.AlertNone, stock.EvaluateAlert(5, 5, 100))
	// Igual ao máximo não dispara
	assert.Equal(t, stock.AlertNone, stock.EvaluateAlert(100, 5, 100))
	assert.Equal(t, stock.AlertNone, stock.EvaluateAlert(50, 5, 100))
}

// Máximo 0 significa "sem limite superior": nunca dispara ACIMA_MAXIMO.
func TestEvaluateAlert_MaximoZeroEhSemLimite(t *testing.T) {
	assert.Equal(t, stock.AlertNone, stock.EvaluateAlert(99999, 5, 0))
}

// O mínimo vence quando os dois limites estariam violados (configuração
// degenerada com máximo < mínimo).
func TestEvaluateAlert_MinimoTemPrecedencia(t *testing.T) {
	assert.Equal(t, stock.AlertBelowMin, stock.EvaluateAlert(4, 10, 3))
}
