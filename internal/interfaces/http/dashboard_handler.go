package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/application/reports"
	"github.com/stockmaster/stockmaster-api/internal/application/usecase"
)

// DashboardHandler maneja el resumen de la vista principal.
type DashboardHandler struct {
	uc    *reports.DashboardUseCase
	users *usecase.UserUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reports.DashboardUseCase, users *usecase.UserUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, users: users}
}

// Summary godoc
// @Summary      Resumen del dashboard (métricas, alertas y movimientos recientes)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	// El nombre personaliza el saludo; si el usuario desapareció se deja vacío.
	userName := ""
	if user, err := h.users.GetByID(userID); err == nil && user != nil {
		userName = user.Name
	}
	out, err := h.uc.Summary(c.Context(), userName)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
