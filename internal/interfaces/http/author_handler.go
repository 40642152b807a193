package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bibliostock/bibliostock-api/internal/application/dto"
	"github.com/bibliostock/bibliostock-api/internal/application/usecase"
)

// AuthorHandler atende as requisições HTTP de autores.
type AuthorHandler struct {
	uc *usecase.AuthorUseCase
}

// NewAuthorHandler constrói o handler.
func NewAuthorHandler(uc *usecase.AuthorUseCase) *AuthorHandler {
	return &AuthorHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar autor
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AuthorRequest  true  "Dados do autor"
// @Success      201   {object}  dto.AuthorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/authors [post]
func (h *AuthorHandler) Create(c *fiber.Ctx) error {
	var in dto.AuthorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter autor por ID
// @Tags         authors
// @Produce      json
// @Param        id   path  string  true  "ID do autor"
// @Success      200  {object}  dto.AuthorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/authors/{id} [get]
func (h *AuthorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "autor não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar autores
// @Tags         authors
// @Produce      json
// @Success      200  {array}  dto.AuthorResponse
// @Router       /api/authors [get]
func (h *AuthorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar autor
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do autor"
// @Param        body  body  dto.AuthorRequest  true  "Dados do autor"
// @Success      200   {object}  dto.AuthorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/authors/{id} [put]
func (h *AuthorHandler) Update(c *fiber.Ctx) error {
	var in dto.AuthorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "autor não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir autor (bloqueado se houver produtos vinculados)
// @Tags         authors
// @Produce      json
// @Param        id   path  string  true  "ID do autor"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
