package handlers

import (
	"errors"
	"strconv"

	"github.com/akgundogan/farmgate-backend/internal/dto"
	"github.com/akgundogan/farmgate-backend/internal/identity"
	"github.com/akgundogan/farmgate-backend/internal/services"
	"github.com/akgundogan/farmgate-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles GET /farmer/orders.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	farmerID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "Access token required",
		})
	}
	return c.JSON(h.orderService.ListByFarmer(farmerID))
}

// UpdateStatus handles PUT /farmer/orders/:id/status. The status string is
// stored verbatim.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	farmerID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "Access token required",
		})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Message: "Order not found",
		})
	}

	var req dto.OrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	order, err := h.orderService.UpdateStatus(farmerID, id, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(order)
}
