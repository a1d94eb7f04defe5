package handlers

import (
	"github.com/akgundogan/farmgate-backend/internal/dto"
	"github.com/akgundogan/farmgate-backend/internal/identity"
	"github.com/akgundogan/farmgate-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /farmer/dashboard.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	farmerID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "Access token required",
		})
	}
	return c.JSON(h.dashboardService.Stats(farmerID))
}
