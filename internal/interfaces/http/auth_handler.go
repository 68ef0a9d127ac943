package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despachosys-api/internal/application/auth"
	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/application/usecase"
)

// AuthHandler usuario actual, roles y emisión de tokens de desarrollo.
type AuthHandler struct {
	auth  *auth.AuthUseCase
	users *usecase.UserUseCase
}

// NewAuthHandler construye el handler. auth puede ser nil (emisión deshabilitada).
func NewAuthHandler(authUC *auth.AuthUseCase, users *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{auth: authUC, users: users}
}

// IssueToken godoc
// @Summary      Emitir token (solo development)
// @Description  Da de alta o actualiza el usuario por open_id y devuelve un JWT firmado.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueTokenRequest  true  "open_id, name, email, role"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/token [post]
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var in dto.IssueTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.auth.IssueToken(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuario actual
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.users.Me(c.UserContext(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.users.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateRole godoc
// @Summary      Cambiar rol de un usuario (solo admin)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateRoleRequest  true  "Nuevo rol"
// @Success      200   {object}  dto.MutationResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/role [put]
func (h *AuthHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.users.UpdateRole(c.UserContext(), GetRole(c), c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK())
}
