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

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /farmer/products - products owned by the caller, in
// insertion order.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	farmerID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "Access token required",
		})
	}
	return c.JSON(h.productService.ListByFarmer(farmerID))
}

// Create handles POST /farmer/products.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	farmerID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "Access token required",
		})
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	product := h.productService.Create(farmerID, &req)
	return c.Status(fiber.StatusCreated).JSON(product)
}

// Update handles PUT /farmer/products/:id. A product owned by another farmer
// looks exactly like a missing one.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	farmerID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "Access token required",
		})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Message: "Product not found",
		})
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	product, err := h.productService.Update(farmerID, id, &req)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(product)
}

// Delete handles DELETE /farmer/products/:id.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	farmerID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "Access token required",
		})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Message: "Product not found",
		})
	}

	if err := h.productService.Delete(farmerID, id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Product deleted successfully"})
}
