// Package report deriva as visões somente-leitura dos relatórios gerenciais.
// Tudo aqui é recomputado sob demanda com varreduras lineares — sem cache e
// sem índices; na escala da livraria isso é suficiente.
package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/pricing"
)

// Ordenação por nome em pt-BR ("Água" antes de "Zebra", acentos ignorados na
// posição relativa).
var collator = collate.New(language.BrazilianPortuguese, collate.IgnoreCase)

func sortProductsByName(products []*entity.Product) []*entity.Product {
	sorted := make([]*entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}

// CategoryIndex indexa categorias por id para os lookups dos relatórios.
func CategoryIndex(categories []*entity.Category) map[string]*entity.Category {
	idx := make(map[string]*entity.Category, len(categories))
	for _, c := range categories {
		idx[c.ID] = c
	}
	return idx
}

// ── Tabela de preços ──────────────────────────────────────────────────────────

// PriceRow linha do relatório de preços: preço atual e projeção com o
// percentual padrão da categoria (projeção, não preço efetivado).
type PriceRow struct {
	ProductID        string
	ProductName      string
	ISBN             string
	PriceUnit        decimal.Decimal
	PriceWithPercent decimal.Decimal
}

// PriceList devolve todos os produtos em ordem de nome com o preço projetado.
func PriceList(products []*entity.Product, categories map[string]*entity.Category) []PriceRow {
	rows := make([]PriceRow, 0, len(products))
	for _, p := range sortProductsByName(products) {
		rows = append(rows, PriceRow{
			ProductID:        p.ID,
			ProductName:      p.Name,
			ISBN:             p.ISBN,
			PriceUnit:        p.Price,
			PriceWithPercent: pricing.ProjectedPrice(p, categories),
		})
	}
	return rows
}

// ── Balanço ───────────────────────────────────────────────────────────────────

// BalanceRow linha do balanço: valor da linha = estoque × preço unitário.
type BalanceRow struct {
	ProductID   string
	ProductName string
	StockQty    int64
	Price       decimal.Decimal
	TotalValue  decimal.Decimal
}

// Balance devolve as linhas em ordem de nome e o total geral (soma das linhas).
func Balance(products []*entity.Product) ([]BalanceRow, decimal.Decimal) {
	rows := make([]BalanceRow, 0, len(products))
	total := decimal.Zero
	for _, p := range sortProductsByName(products) {
		lineValue := p.Price.Mul(decimal.NewFromInt(p.StockQty))
		rows = append(rows, BalanceRow{
			ProductID:   p.ID,
			ProductName: p.Name,
			StockQty:    p.StockQty,
			Price:       p.Price,
			TotalValue:  lineValue,
		})
		total = total.Add(lineValue)
	}
	return rows, total
}

// ── Abaixo do mínimo ─────────────────────────────────────────────────────────

// BelowMinimumRow produto com estoque abaixo do limite mínimo.
type BelowMinimumRow struct {
	ProductID    string
	ProductName  string
	CategoryName string
	MinQty       int64
	StockQty     int64
	Deficit      int64 // mínimo - estoque
}

// BelowMinimum filtra produtos com estoque < mínimo, em ordem de nome.
func BelowMinimum(products []*entity.Product, categories map[string]*entity.Category) []BelowMinimumRow {
	rows := make([]BelowMinimumRow, 0)
	for _, p := range sortProductsByName(products) {
		if p.StockQty >= p.MinQty {
			continue
		}
		categoryName := ""
		if cat := categories[p.CategoryID]; cat != nil {
			categoryName = cat.Name
		}
		rows = append(rows, BelowMinimumRow{
			ProductID:    p.ID,
			ProductName:  p.Name,
			CategoryName: categoryName,
			MinQty:       p.MinQty,
			StockQty:     p.StockQty,
			Deficit:      p.MinQty - p.StockQty,
		})
	}
	return rows
}

// ── Produtos por categoria ────────────────────────────────────────────────────

// CategoryCount contagem de produtos que referenciam cada categoria.
type CategoryCount struct {
	CategoryID   string
	CategoryName string
	ProductCount int
}

// PerCategoryCounts devolve uma linha por categoria (inclusive com zero
// produtos), em ordem de nome de categoria.
func PerCategoryCounts(categories []*entity.Category, products []*entity.Product) []CategoryCount {
	counts := make(map[string]int, len(categories))
	for _, p := range products {
		counts[p.CategoryID]++
	}
	sorted := make([]*entity.Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	rows := make([]CategoryCount, 0, len(sorted))
	for _, c := range sorted {
		rows = append(rows, CategoryCount{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			ProductCount: counts[c.ID],
		})
	}
	return rows
}

// ── Resumo de movimentações ───────────────────────────────────────────────────

// MovementTotals somatório de entradas e saídas de um produto.
type MovementTotals struct {
	ProductID   string
	ProductName string
	Entries     int64
	Exits       int64
	Net         int64 // entradas - saídas
}

// MovementSummary resumo geral: uma linha por produto movimentado, mais os
// extremos. MostEntries/MostExits são nil quando não há movimentações.
type MovementSummary struct {
	Rows        []MovementTotals
	MostEntries *MovementTotals
	MostExits   *MovementTotals
}

// SummarizeMovements agrega as movimentações por produto. Só entram no resumo
// produtos referenciados por ao menos uma movimentação; o nome exibido é o
// snapshot gravado na movimentação mais recente. Os extremos saem de uma
// varredura linear de máximo — empates ficam com o primeiro encontrado.
func SummarizeMovements(movements []*entity.Movement) MovementSummary {
	totals := make(map[string]*MovementTotals)
	order := make([]string, 0)
	for _, m := range movements {
		t, ok := totals[m.ProductID]
		if !ok {
			t = &MovementTotals{ProductID: m.ProductID, ProductName: m.ProductName}
			totals[m.ProductID] = t
			order = append(order, m.ProductID)
		}
		switch m.Type {
		case entity.MovementTypeEntrada:
			t.Entries += m.Quantity
		case entity.MovementTypeSaida:
			t.Exits += m.Quantity
		}
	}

	rows := make([]MovementTotals, 0, len(order))
	for _, id := range order {
		t := totals[id]
		t.Net = t.Entries - t.Exits
		rows = append(rows, *t)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return collator.CompareString(rows[i].ProductName, rows[j].ProductName) < 0
	})

	summary := MovementSummary{Rows: rows}
	for i := range rows {
		if summary.MostEntries == nil || rows[i].Entries > summary.MostEntries.Entries {
			summary.MostEntries = &rows[i]
		}
		if summary.MostExits == nil || rows[i].Exits > summary.MostExits.Exits {
			summary.MostExits = &rows[i]
		}
	}
	return summary
}
