package reports

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PDFUseCase converte cada relatório em um TableDocument (células já
// formatadas para exibição) e delega a renderização ao PDFGenerator.
type PDFUseCase struct {
	reports   *ReportUseCase
	generator PDFGenerator
}

// NewPDFUseCase constrói o caso de uso.
func NewPDFUseCase(reports *ReportUseCase, generator PDFGenerator) *PDFUseCase {
	return &PDFUseCase{reports: reports, generator: generator}
}

// Exibição com 2 casas; o cálculo em si nunca arredonda.
func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

func percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

func subtitle() string {
	return "Gerado em " + time.Now().Format("02/01/2006 15:04")
}

// ProductPricesPDF tabela de preços em PDF.
func (uc *PDFUseCase) ProductPricesPDF(ctx context.Context) ([]byte, error) {
	rows, err := uc.reports.ProductPrices(ctx)
	if err != nil {
		return nil, err
	}
	doc := TableDocument{
		Title:    "Tabela de Preços",
		Subtitle: subtitle(),
		Headers:  []string{"Produto", "ISBN", "Preço Atual", "Preço c/ Padrão"},
	}
	for _, r := range rows {
		doc.Rows = append(doc.Rows, []string{
			r.ProductName, r.ISBN, money(r.PriceUnit), money(r.PriceWithPercent),
		})
	}
	return uc.generator.Generate(ctx, doc)
}

// BalancePDF balanço do estoque em PDF, com o total geral no rodapé.
func (uc *PDFUseCase) BalancePDF(ctx context.Context) ([]byte, error) {
	balance, err := uc.reports.Balance(ctx)
	if err != nil {
		return nil, err
	}
	doc := TableDocument{
		Title:    "Balanço do Estoque",
		Subtitle: subtitle(),
		Headers:  []string{"Produto", "Estoque", "Preço Unitário", "Valor Total"},
		Footer:   "Total geral: " + money(balance.TotalValue),
	}
	for _, r := range balance.Items {
		doc.Rows = append(doc.Rows, []string{
			r.Name, strconv.FormatInt(r.StockQty, 10), money(r.Price), money(r.TotalValue),
		})
	}
	return uc.generator.Generate(ctx, doc)
}

// BelowMinimumPDF produtos abaixo do mínimo em PDF.
func (uc *PDFUseCase) BelowMinimumPDF(ctx context.Context) ([]byte, error) {
	rows, err := uc.reports.BelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	doc := TableDocument{
		Title:    "Produtos Abaixo do Mínimo",
		Subtitle: subtitle(),
		Headers:  []string{"Produto", "Categoria", "Mínimo", "Estoque", "Déficit"},
	}
	for _, r := range rows {
		doc.Rows = append(doc.Rows, []string{
			r.ProductName, r.CategoryName,
			strconv.FormatInt(r.MinQty, 10),
			strconv.FormatInt(r.StockQty, 10),
			strconv.FormatInt(r.Deficit, 10),
		})
	}
	return uc.generator.Generate(ctx, doc)
}

// PerCategoryPDF produtos por categoria em PDF.
func (uc *PDFUseCase) PerCategoryPDF(ctx context.Context) ([]byte, error) {
	rows, err := uc.reports.PerCategory(ctx)
	if err != nil {
		return nil, err
	}
	doc := TableDocument{
		Title:    "Produtos por Categoria",
		Subtitle: subtitle(),
		Headers:  []string{"Categoria", "Produtos"},
	}
	for _, r := range rows {
		doc.Rows = append(doc.Rows, []string{r.Name, strconv.Itoa(r.ProductCount)})
	}
	return uc.generator.Generate(ctx, doc)
}

// MovementsHistoryPDF resumo de movimentações em PDF, extremos no rodapé.
func (uc *PDFUseCase) MovementsHistoryPDF(ctx context.Context) ([]byte, error) {
	summary, err := uc.reports.MovementsHistory(ctx)
	if err != nil {
		return nil, err
	}
	doc := TableDocument{
		Title:    "Resumo de Movimentações",
		Subtitle: subtitle(),
		Headers:  []string{"Produto", "Entradas", "Saídas", "Saldo"},
	}
	for _, r := range summary.Movements {
		doc.Rows = append(doc.Rows, []string{
			r.ProductName,
			strconv.FormatInt(r.Entries, 10),
			strconv.FormatInt(r.Exits, 10),
			strconv.FormatInt(r.Saldo, 10),
		})
	}
	if summary.MostEntries != nil && summary.MostExits != nil {
		doc.Footer = fmt.Sprintf("Mais entradas: %s (%d)  |  Mais saídas: %s (%d)",
			summary.MostEntries.ProductName, summary.MostEntries.Total,
			summary.MostExits.ProductName, summary.MostExits.Total,
		)
	}
	return uc.generator.Generate(ctx, doc)
}
