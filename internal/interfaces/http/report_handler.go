package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bibliostock/bibliostock-api/internal/application/reports"
)

// ReportHandler atende as requisições HTTP dos relatórios gerenciais.
// Todos aceitam ?format=pdf para a exportação gráfica.
type ReportHandler struct {
	uc  *reports.ReportUseCase
	pdf *reports.PDFUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.ReportUseCase, pdf *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

func wantsPDF(c *fiber.Ctx) bool {
	return c.Query("format") == "pdf"
}

func sendPDF(c *fiber.Ctx, filename string, body []byte, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}

// Prices godoc
// @Summary      Relatório de preços (com projeção do percentual padrão da categoria)
// @Tags         reports
// @Produce      json
// @Param        format  query  string  false  "pdf para exportar em PDF"
// @Success      200  {array}  dto.ProductPriceDTO
// @Router       /api/reports/products-prices [get]
func (h *ReportHandler) Prices(c *fiber.Ctx) error {
	if wantsPDF(c) {
		body, err := h.pdf.ProductPricesPDF(c.Context())
		return sendPDF(c, "relatorio-precos.pdf", body, err)
	}
	out, err := h.uc.ProductPrices(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Balanço físico-financeiro do estoque
// @Tags         reports
// @Produce      json
// @Param        format  query  string  false  "pdf para exportar em PDF"
// @Success      200  {object}  dto.BalanceResponseDTO
// @Router       /api/reports/balance [get]
func (h *ReportHandler) Balance(c *fiber.Ctx) error {
	if wantsPDF(c) {
		body, err := h.pdf.BalancePDF(c.Context())
		return sendPDF(c, "balanco-estoque.pdf", body, err)
	}
	out, err := h.uc.Balance(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BelowMinimum godoc
// @Summary      Produtos abaixo do estoque mínimo
// @Tags         reports
// @Produce      json
// @Param        format  query  string  false  "pdf para exportar em PDF"
// @Success      200  {array}  dto.ProductBelowMinimumDTO
// @Router       /api/reports/products-below-minimum [get]
func (h *ReportHandler) BelowMinimum(c *fiber.Ctx) error {
	if wantsPDF(c) {
		body, err := h.pdf.BelowMinimumPDF(c.Context())
		return sendPDF(c, "abaixo-minimo.pdf", body, err)
	}
	out, err := h.uc.BelowMinimum(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PerCategory godoc
// @Summary      Quantidade de produtos por categoria
// @Tags         reports
// @Produce      json
// @Param        format  query  string  false  "pdf para exportar em PDF"
// @Success      200  {array}  dto.ProductsPerCategoryDTO
// @Router       /api/reports/products-per-category [get]
func (h *ReportHandler) PerCategory(c *fiber.Ctx) error {
	if wantsPDF(c) {
		body, err := h.pdf.PerCategoryPDF(c.Context())
		return sendPDF(c, "produtos-por-categoria.pdf", body, err)
	}
	out, err := h.uc.PerCategory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MovementsHistory godoc
// @Summary      Resumo de movimentações por produto com destaques
// @Tags         reports
// @Produce      json
// @Param        format  query  string  false  "pdf para exportar em PDF"
// @Success      200  {object}  dto.MovementsHistoryReportDTO
// @Router       /api/reports/movements-history [get]
func (h *ReportHandler) MovementsHistory(c *fiber.Ctx) error {
	if wantsPDF(c) {
		body, err := h.pdf.MovementsHistoryPDF(c.Context())
		return sendPDF(c, "historico-movimentacoes.pdf", body, err)
	}
	out, err := h.uc.MovementsHistory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
