package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/application/inventory"
	"github.com/jhoicas/despachosys-api/internal/application/reports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InventoryHandler libro de movimientos de stock (protegido).
type InventoryHandler struct {
	movements *inventory.MovementUseCase
	exports   *reports.ExportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movements *inventory.MovementUseCase, exports *reports.ExportUseCase) *InventoryHandler {
	return &InventoryHandler{movements: movements, exports: exports}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Entrada suma y salida resta la cantidad. Una salida mayor a la existencia responde 409.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, direction (inbound|outbound), quantity, reason, note"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	userID, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.movements.Register(c.UserContext(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Created(id))
}

// ListMovements godoc
// @Summary      Listar movimientos de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por mercadería"
// @Param        direction   query  string  false  "inbound | outbound"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/stock/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var f dto.MovementFilter
	if err := c.QueryParser(&f); err != nil {
		return badBody(c)
	}
	out, err := h.movements.List(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteMovement godoc
// @Summary      Eliminar movimiento (no soportado)
// @Description  El libro es de solo inserción; siempre responde success=false.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MutationResponse
// @Router       /api/stock/movements/{id} [delete]
func (h *InventoryHandler) DeleteMovement(c *fiber.Ctx) error {
	return c.JSON(h.movements.Delete(c.UserContext(), c.Params("id")))
}

// ExportMovements godoc
// @Summary      Exportar movimientos a XLSX
// @Tags         stock
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        product_id  query  string  false  "Filtrar por mercadería"
// @Param        direction   query  string  false  "inbound | outbound"
// @Success      200
// @Router       /api/stock/movements/export [get]
func (h *InventoryHandler) ExportMovements(c *fiber.Ctx) error {
	var f dto.MovementFilter
	if err := c.QueryParser(&f); err != nil {
		return badBody(c)
	}
	b, name, err := h.exports.Movements(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, xlsxContentType, name, b)
}
