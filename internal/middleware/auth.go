package middleware

import (
	"github.com/akgundogan/farmgate-backend/internal/config"
	"github.com/akgundogan/farmgate-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected gates a route behind a bearer token. A request with no
// Authorization header fails 401; a present but invalid or expired token
// fails 403, matching the split the API contract promises.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if c.Get(fiber.HeaderAuthorization) == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Message: "Access token required",
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Message: "Invalid token",
			})
		},
	})
}
