package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bibliostock/bibliostock-api/internal/application/analytics"
)

// DashboardHandler atende a visão geral consumida pela página inicial.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview godoc
// @Summary      Visão geral do painel
// @Description  Contadores do catálogo, valor do estoque, totais de
//
//	movimentações, últimos produtos e alertas de estoque mínimo.
//
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardOverviewDTO
// @Router       /api/dashboard/overview [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
