// Package identity extracts the caller's verified claims from the Fiber
// context after the JWT middleware has run.
package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var ErrNoClaims = errors.New("no verified claims in context")

// Claims returns the decoded JWT claims stored by the auth middleware.
func Claims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, ErrNoClaims
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// UserID extracts the numeric user id from the verified claims.
func UserID(c *fiber.Ctx) (int64, error) {
	claims, err := Claims(c)
	if err != nil {
		return 0, err
	}
	id, ok := claims["userId"].(float64)
	if !ok {
		return 0, errors.New("missing userId claim")
	}
	return int64(id), nil
}

// UserType extracts the account type ("farmer" or "buyer") from the claims.
func UserType(c *fiber.Ctx) (string, error) {
	claims, err := Claims(c)
	if err != nil {
		return "", err
	}
	userType, ok := claims["userType"].(string)
	if !ok {
		return "", errors.New("missing userType claim")
	}
	return userType, nil
}
