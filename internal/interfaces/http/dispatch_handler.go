package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/internal/application/inventory"
	"github.com/jhoicas/despachosys-api/internal/application/reports"
)

// DispatchHandler despachos y rastreo público.
type DispatchHandler struct {
	uc      *inventory.DispatchUseCase
	exports *reports.ExportUseCase
}

// NewDispatchHandler construye el handler.
func NewDispatchHandler(uc *inventory.DispatchUseCase, exports *reports.ExportUseCase) *DispatchHandler {
	return &DispatchHandler{uc: uc, exports: exports}
}

// Create godoc
// @Summary      Crear despacho
// @Description  Descuenta la existencia y registra la salida en una sola transacción.
// @Tags         dispatches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDispatchRequest  true  "Cliente, mercadería, cantidad y datos de envío"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dispatches [post]
func (h *DispatchHandler) Create(c *fiber.Ctx) error {
	userID, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.CreateDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(c.UserContext(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Created(id))
}

// Update godoc
// @Summary      Actualizar despacho
// @Description  Transportadora, rastreo, estado, observación y fechas. Cancelar devuelve la cantidad al stock.
// @Tags         dispatches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del despacho"
// @Param        body  body  dto.UpdateDispatchRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/dispatches/{id} [put]
func (h *DispatchHandler) Update(c *fiber.Ctx) error {
	userID, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.UpdateDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(c.UserContext(), userID, c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK())
}

// Delete godoc
// @Summary      Eliminar despacho
// @Description  Borra solo el despacho; el movimiento de salida queda en el libro.
// @Tags         dispatches
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del despacho"
// @Success      200  {object}  dto.MutationResponse
// @Router       /api/dispatches/{id} [delete]
func (h *DispatchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK())
}

func (h *DispatchHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar despachos
// @Tags         dispatches
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "pending | in_transit | delivered | cancelled"
// @Param        customer_id  query  string  false  "Filtrar por cliente"
// @Param        carrier_id   query  string  false  "Filtrar por transportadora"
// @Success      200  {array}  dto.DispatchResponse
// @Router       /api/dispatches [get]
func (h *DispatchHandler) List(c *fiber.Ctx) error {
	var f dto.DispatchFilter
	if err := c.QueryParser(&f); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Track godoc
// @Summary      Rastrear despacho
// @Tags         dispatches
// @Produce      json
// @Param        code  path  string  true  "Código de rastreo"
// @Success      200   {object}  dto.TrackingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/dispatches/track/{code} [get]
func (h *DispatchHandler) Track(c *fiber.Ctx) error {
	out, err := h.uc.Track(c.UserContext(), c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar despachos a XLSX
// @Tags         dispatches
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status       query  string  false  "Estado"
// @Param        customer_id  query  string  false  "Cliente"
// @Param        carrier_id   query  string  false  "Transportadora"
// @Success      200
// @Router       /api/dispatches/export [get]
func (h *DispatchHandler) Export(c *fiber.Ctx) error {
	var f dto.DispatchFilter
	if err := c.QueryParser(&f); err != nil {
		return badBody(c)
	}
	b, name, err := h.exports.Dispatches(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, xlsxContentType, name, b)
}
