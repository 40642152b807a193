// Package pdf implementa a exportação dos relatórios gerenciais em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título do relatório  │  Data de emissão            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUBTÍTULO: escopo / filtros do relatório                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: cabeçalho + uma linha por registro                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: totais do relatório (quando houver)                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/bibliostock/bibliostock-api/internal/application/reports"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
// O documento é tabular e genérico: cada relatório entrega título, cabeçalhos
// e linhas já formatadas, e o generator só cuida do layout.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator constrói o generator.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// Generate monta o PDF do documento e devolve seus bytes.
func (g *MarotoReportGenerator) Generate(_ context.Context, doc reports.TableDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor("BiblioStock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	widths := columnWidths(len(doc.Headers))
	m.AddRows(tableHeaderRow(doc.Headers, widths))
	for _, r := range tableBodyRows(doc.Rows, widths) {
		m.AddRows(r)
	}

	if doc.Footer != "" {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(footerRow(doc.Footer))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título + subtítulo (esq) e data de emissão (dir).
func headerRow(doc reports.TableDocument, now time.Time) core.Row {
	emitted := now.Format("02/01/2006 15:04")

	left := col.New(8).Add(
		text.New(doc.Title, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	)
	if doc.Subtitle != "" {
		left.Add(text.New(doc.Subtitle, props.Text{
			Size: 9, Top: 9, Color: colorGray,
		}))
	}

	return row.New(16).Add(
		left,
		col.New(4).Add(
			text.New("BIBLIOSTOCK", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido em: "+emitted, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela.
func tableHeaderRow(headers []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		a := align.Left
		if i > 0 {
			a = align.Right
		}
		cols = append(cols, col.New(widths[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableBodyRows: uma linha por registro. A primeira coluna alinha à esquerda,
// as demais à direita (valores numéricos).
func tableBodyRows(body [][]string, widths []int) []core.Row {
	result := make([]core.Row, 0, len(body))
	for _, cells := range body {
		cols := make([]core.Col, 0, len(cells))
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			a := align.Left
			if i > 0 {
				a = align.Right
			}
			cols = append(cols, col.New(widths[i]).Add(text.New(cell, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
			})))
		}
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}

// footerRow: totais do relatório alinhados à direita.
func footerRow(footer string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(footer, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnWidths distribui as 12 colunas do grid do maroto entre as colunas da
// tabela. A primeira (descrição) fica com a sobra.
func columnWidths(n int) []int {
	if n == 0 {
		return nil
	}
	base := 12 / n
	rest := 12 % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
	}
	widths[0] += rest
	return widths
}
