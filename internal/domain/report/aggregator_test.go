package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/report"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Balanço
// ──────────────────────────────────────────────────────────────────────────────

func TestBalance_TotalEhSomaDasLinhas(t *testing.T) {
	products := []*entity.Product{
		{ID: "p1", Name: "Dom Casmurro", StockQty: 10, Price: dec("30")},
		{ID: "p2", Name: "Avesso da Pele", StockQty: 3, Price: dec("45.50")},
	}

	rows, total := report.Balance(products)
	require.Len(t, rows, 2)

	// Ordenadas por nome: "Avesso da Pele" vem antes
	assert.Equal(t, "p2", rows[0].ProductID)
	assert.True(t, rows[0].TotalValue.Equal(dec("136.5")))
	assert.True(t, rows[1].TotalValue.Equal(dec("300")))
	assert.True(t, total.Equal(dec("436.5")), "total geral deve ser a soma das linhas")
}

func TestBalance_Vazio(t *testing.T) {
	rows, total := report.Balance(nil)
	assert.Empty(t, rows)
	assert.True(t, total.Equal(decimal.Zero))
}

// ──────────────────────────────────────────────────────────────────────────────
// Abaixo do mínimo
// ──────────────────────────────────────────────────────────────────────────────

func TestBelowMinimum_FiltraEDerivaDeficit(t *testing.T) {
	categories := report.CategoryIndex([]*entity.Category{
		{ID: "c1", Name: "Romance"},
	})
	products := []*entity.Product{
		{ID: "p1", Name: "No limite", StockQty: 5, MinQty: 5, CategoryID: "c1"},
		{ID: "p2", Name: "Abaixo", StockQty: 2, MinQty: 6, CategoryID: "c1"},
		{ID: "p3", Name: "Sem categoria", StockQty: 0, MinQty: 1},
	}

	rows := report.BelowMinimum(products, categories)
	require.Len(t, rows, 2)

	// Estoque igual ao mínimo fica de fora; só p2 e p3 entram
	assert.Equal(t, "p2", rows[0].ProductID)
	assert.Equal(t, int64(4), rows[0].Deficit)
	assert.Equal(t, "Romance", rows[0].CategoryName)

	assert.Equal(t, "p3", rows[1].ProductID)
	assert.Equal(t, int64(1), rows[1].Deficit)
	assert.Equal(t, "", rows[1].CategoryName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Produtos por categoria
// ──────────────────────────────────────────────────────────────────────────────

func TestPerCategoryCounts_IncluiCategoriasVazias(t *testing.T) {
	categories := []*entity.Category{
		{ID: "c1", Name: "Romance"},
		{ID: "c2", Name: "Didático"},
	}
	products := []*entity.Product{
		{ID: "p1", CategoryID: "c1"},
		{ID: "p2", CategoryID: "c1"},
	}

	rows := report.PerCategoryCounts(categories, products)
	require.Len(t, rows, 2)

	// Ordem por nome pt-BR: "Didático" antes de "Romance"
	assert.Equal(t, "Didático", rows[0].CategoryName)
	assert.Equal(t, 0, rows[0].ProductCount)
	assert.Equal(t, "Romance", rows[1].CategoryName)
	assert.Equal(t, 2, rows[1].ProductCount)
}

// As contagens particionam o catálogo: a soma das linhas bate com o total de
// produtos quando todos têm categoria.
func TestPerCategoryCounts_SomaBateComCatalogo(t *testing.T) {
	categories := []*entity.Category{
		{ID: "c1", Name: "A"}, {ID: "c2", Name: "B"}, {ID: "c3", Name: "C"},
	}
	products := []*entity.Product{
		{CategoryID: "c1"}, {CategoryID: "c2"}, {CategoryID: "c2"}, {CategoryID: "c3"},
	}
	total := 0
	for _, row := range report.PerCategoryCounts(categories, products) {
		total += row.ProductCount
	}
	assert.Equal(t, len(products), total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumo de movimentações
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarizeMovements_AgregaPorProduto(t *testing.T) {
	movements := []*entity.Movement{
		{ProductID: "p1", ProductName: "Dom Casmurro", Type: entity.MovementTypeEntrada, Quantity: 10},
		{ProductID: "p1", ProductName: "Dom Casmurro", Type: entity.MovementTypeSaida, Quantity: 4},
		{ProductID: "p2", ProductName: "Capitães da Areia", Type: entity.MovementTypeEntrada, Quantity: 3},
		{ProductID: "p1", ProductName: "Dom Casmurro", Type: entity.MovementTypeEntrada, Quantity: 2},
	}

	summary := report.SummarizeMovements(movements)
	require.Len(t, summary.Rows, 2)

	byID := map[string]report.MovementTotals{}
	for _, r := range summary.Rows {
		byID[r.ProductID] = r
	}
	assert.Equal(t, int64(12), byID["p1"].Entries)
	assert.Equal(t, int64(4), byID["p1"].Exits)
	assert.Equal(t, int64(8), byID["p1"].Net)
	assert.Equal(t, int64(3), byID["p2"].Entries)

	require.NotNil(t, summary.MostEntries)
	assert.Equal(t, "p1", summary.MostEntries.ProductID)
	require.NotNil(t, summary.MostExits)
	assert.Equal(t, "p1", summary.MostExits.ProductID)
}

func TestSummarizeMovements_SemMovimentacoes(t *testing.T) {
	summary := report.SummarizeMovements(nil)
	assert.Empty(t, summary.Rows)
	assert.Nil(t, summary.MostEntries)
	assert.Nil(t, summary.MostExits)
}

// Empate nos extremos fica com o primeiro da ordem de exibição.
func TestSummarizeMovements_EmpateFicaComPrimeiro(t *testing.T) {
	movements := []*entity.Movement{
		{ProductID: "p1", ProductName: "Beta", Type: entity.MovementTypeEntrada, Quantity: 5},
		{ProductID: "p2", ProductName: "Alfa", Type: entity.MovementTypeEntrada, Quantity: 5},
	}
	summary := report.SummarizeMovements(movements)
	require.NotNil(t, summary.MostEntries)
	// Linhas ordenadas por nome: "Alfa" vem primeiro e vence o empate
	assert.Equal(t, "p2", summary.MostEntries.ProductID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabela de preços
// ──────────────────────────────────────────────────────────────────────────────

func TestPriceList_ProjetaPercentualDaCategoria(t *testing.T) {
	categories := report.CategoryIndex([]*entity.Category{
		{ID: "c1", Name: "Romance", DefaultAdjustmentPercent: dec("10")},
	})
	products := []*entity.Product{
		{ID: "p1", Name: "Com categoria", ISBN: "978-85-359-0277-5", Price: dec("50"), CategoryID: "c1"},
		{ID: "p2", Name: "Sem categoria", Price: dec("30")},
	}

	rows := report.PriceList(products, categories)
	require.Len(t, rows, 2)

	assert.True(t, rows[0].PriceWithPercent.Equal(dec("55")))
	assert.Equal(t, "978-85-359-0277-5", rows[0].ISBN)
	// Sem categoria: projeção igual ao preço atual
	assert.True(t, rows[1].PriceWithPercent.Equal(dec("30")))
}
