package routes

import (
	"time"

	"github.com/akgundogan/farmgate-backend/internal/config"
	"github.com/akgundogan/farmgate-backend/internal/handlers"
	"github.com/akgundogan/farmgate-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	productHandler *handlers.ProductHandler,
	orderHandler *handlers.OrderHandler,
	reviewHandler *handlers.ReviewHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	// Protected routes (bearer token required)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/user/profile", middleware.JWTProtected(cfg), authHandler.Profile)

	// Farmer-scoped resources
	farmer := api.Group("/farmer", middleware.JWTProtected(cfg))
	farmer.Get("/products", productHandler.List)
	farmer.Post("/products", productHandler.Create)
	farmer.Put("/products/:id", productHandler.Update)
	farmer.Delete("/products/:id", productHandler.Delete)
	farmer.Get("/orders", orderHandler.List)
	farmer.Put("/orders/:id/status", orderHandler.UpdateStatus)
	farmer.Get("/reviews", reviewHandler.List)
	farmer.Get("/dashboard", dashboardHandler.Stats)
}
