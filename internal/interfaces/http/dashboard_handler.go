package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/despachosys-api/internal/application/analytics"
)

// DashboardHandler estadísticas del tablero (público).
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas del tablero
// @Description  Conteos de mercaderías activas, existencia total, clientes, despachos, pedidos,
//
//	oportunidades y cuentas vencidas. Cada conteo se consulta por separado.
//
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}

// InvalidateStats descarta el snapshot del tablero después de cada escritura exitosa
// (POST, PUT, DELETE con estado < 400).
func (h *DashboardHandler) InvalidateStats(c *fiber.Ctx) error {
	err := c.Next()
	if err != nil || c.Method() == fiber.MethodGet || c.Response().StatusCode() >= fiber.StatusBadRequest {
		return err
	}
	h.uc.Invalidate(c.UserContext())
	return nil
}
