package handlers

import (
	"github.com/akgundogan/farmgate-backend/internal/dto"
	"github.com/akgundogan/farmgate-backend/internal/identity"
	"github.com/akgundogan/farmgate-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// List handles GET /farmer/reviews. Reviews are read-only through the API.
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	farmerID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "Access token required",
		})
	}
	return c.JSON(h.reviewService.ListByFarmer(farmerID))
}
