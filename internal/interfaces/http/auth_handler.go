package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/bibliostock/bibliostock-api/internal/application/auth"
	"github.com/bibliostock/bibliostock-api/internal/application/dto"
)

// AuthHandler atende login e resolução de identidade.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email e password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetIDByEmail godoc
// @Summary      Resolver ID de usuário por email
// @Description  Usado pelo cliente na subida para descobrir o operador padrão.
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "Email do usuário"
// @Success      200  {object}  dto.UserIDResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/getIdByEmail/{email} [get]
func (h *AuthHandler) GetIDByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if decoded, err := url.PathUnescape(email); err == nil {
		email = decoded
	}
	out, err := h.uc.GetIDByEmail(c.Context(), email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
