package handlers

import (
	"time"

	"github.com/akgundogan/farmgate-backend/internal/dto"
	"github.com/akgundogan/farmgate-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	users, products, orders, reviews := h.store.Counts()

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Users:     users,
		Products:  products,
		Orders:    orders,
		Reviews:   reviews,
	})
}
