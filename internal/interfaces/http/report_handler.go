package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/application/reports"
)

// Formato de fecha aceptado en los query params de reportes.
const reportDateLayout = "2006-01-02"

// ReportHandler maneja las peticiones HTTP de reportes.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Reporte de productos bajo el umbral mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockReportItem
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(items)
}

// MovementsByDate godoc
// @Summary      Reporte de movimientos en un rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        end_date    query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200  {array}   dto.MovementReportItem
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) MovementsByDate(c *fiber.Ctx) error {
	start, err := time.Parse(reportDateLayout, c.Query("start_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválida, use YYYY-MM-DD"})
	}
	end, err := time.Parse(reportDateLayout, c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválida, use YYYY-MM-DD"})
	}
	items, err := h.uc.MovementsByDate(c.Context(), start, end)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(items)
}

// MostSold godoc
// @Summary      Reporte de productos más vendidos (unidades salidas)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SalesReportItem
// @Router       /api/reports/most-sold [get]
func (h *ReportHandler) MostSold(c *fiber.Ctx) error {
	items, err := h.uc.MostSold(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(items)
}
