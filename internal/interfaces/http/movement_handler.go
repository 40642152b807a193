package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bibliostock/bibliostock-api/internal/application/dto"
	"github.com/bibliostock/bibliostock-api/internal/application/inventory"
)

// MovementHandler atende as requisições HTTP de movimentações de estoque.
type MovementHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(uc *inventory.RegisterMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimentação de estoque (ENTRADA ou SAIDA)
// @Description  Aplica a aritmética de estoque e grava o registro imutável em
//
//	uma única transação. A resposta traz o novo saldo e o alerta
//	de limite, quando disparado.
//
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "productId, type, quantity, note"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimentações (mais recentes primeiro)
// @Tags         movements
// @Produce      json
// @Param        type  query  string  false  "Filtro por tipo: ENTRADA ou SAIDA"
// @Success      200   {array}   dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	movementType := c.Query("type")
	out, err := h.uc.List(c.Context(), movementType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
