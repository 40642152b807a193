package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bibliostock/bibliostock-api/internal/application/dto"
	"github.com/bibliostock/bibliostock-api/internal/application/pricing"
)

// AdjustmentHandler atende as requisições HTTP de reajustes de preço.
type AdjustmentHandler struct {
	uc *pricing.ApplyAdjustmentUseCase
}

// NewAdjustmentHandler constrói o handler.
func NewAdjustmentHandler(uc *pricing.ApplyAdjustmentUseCase) *AdjustmentHandler {
	return &AdjustmentHandler{uc: uc}
}

// Apply godoc
// @Summary      Aplicar reajuste de preços
// @Description  GLOBAL reajusta todo o catálogo pelo percentual informado;
//
//	CATEGORIA reajusta uma categoria; PADRAO aplica a cada produto
//	o percentual padrão da sua categoria. O lote de preços e a
//	entrada do histórico saem na mesma transação.
//
// @Tags         price-adjustments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyAdjustmentRequest  true  "scopeType, percent, categoryId, note"
// @Success      201   {object}  dto.ApplyAdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/price-adjustments [post]
func (h *AdjustmentHandler) Apply(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.ApplyAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Apply(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Histórico de reajustes (mais recentes primeiro)
// @Tags         price-adjustments
// @Produce      json
// @Success      200  {array}  dto.AdjustmentHistoryItem
// @Router       /api/price-adjustments/history [get]
func (h *AdjustmentHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
