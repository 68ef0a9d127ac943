package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/application/usecase"
)

// FinanceHandler plan de cuentas, cuentas por pagar y por cobrar (protegido).
type FinanceHandler struct {
	accounts    *usecase.AccountUseCase
	payables    *usecase.PayableUseCase
	receivables *usecase.ReceivableUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(
	accounts *usecase.AccountUseCase,
	payables *usecase.PayableUseCase,
	receivables *usecase.ReceivableUseCase,
) *FinanceHandler {
	return &FinanceHandler{accounts: accounts, payables: payables, receivables: receivables}
}

// CreateAccount godoc
// @Summary      Crear cuenta contable
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "Código, nombre, tipo y cuenta padre"
// @Success      201   {object}  dto.MutationResponse
// @Router       /api/accounts [post]
func (h *FinanceHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.accounts.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Created(out.ID))
}

func (h *FinanceHandler) GetAccount(c *fiber.Ctx) error {
	out, err := h.accounts.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *FinanceHandler) ListAccounts(c *fiber.Ctx) error {
	out, err := h.accounts.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *FinanceHandler) UpdateAccount(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.accounts.Update(c.UserContext(), c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK())
}

func (h *FinanceHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.accounts.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK())
}

// CreatePayable godoc
// @Summary      Crear cuenta por pagar
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePayableRequest  true  "Descripción, importe en centavos y vencimiento"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payables [post]
func (h *FinanceHandler) CreatePayable(c *fiber.Ctx) error {
	userID, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.CreatePayableRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.payables.Create(c.UserContext(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Created(out.ID))
}

func (h *FinanceHandler) GetPayable(c *fiber.Ctx) error {
	out, err := h.payables.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListPayables godoc
// @Summary      Listar cuentas por pagar
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PayableResponse
// @Router       /api/payables [get]
func (h *FinanceHandler) ListPayables(c *fiber.Ctx) error {
	out, err := h.payables.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *FinanceHandler) UpdatePayable(c *fiber.Ctx) error {
	var in dto.UpdatePayableRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.payables.Update(c.UserContext(), c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK())
}

func (h *FinanceHandler) DeletePayable(c *fiber.Ctx) error {
	if err := h.payables.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK())
}

// CreateReceivable godoc
// @Summary      Crear cuenta por cobrar
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceivableRequest  true  "Descripción, importe en centavos, vencimiento y cliente"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/receivables [post]
func (h *FinanceHandler) CreateReceivable(c *fiber.Ctx) error {
	userID, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.CreateReceivableRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.receivables.Create(c.UserContext(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Created(out.ID))
}

func (h *FinanceHandler) GetReceivable(c *fiber.Ctx) error {
	out, err := h.receivables.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *FinanceHandler) ListReceivables(c *fiber.Ctx) error {
	out, err := h.receivables.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *FinanceHandler) UpdateReceivable(c *fiber.Ctx) error {
	var in dto.UpdateReceivableRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.receivables.Update(c.UserContext(), c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK())
}

func (h *FinanceHandler) DeleteReceivable(c *fiber.Ctx) error {
	if err := h.receivables.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK())
}
