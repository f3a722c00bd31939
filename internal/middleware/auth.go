package middleware

import (
	"github.com/drilledtools/backend/internal/config"
	"github.com/drilledtools/backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected requires a valid bearer credential. A missing credential is
// 401; a malformed, expired or badly signed one is 403.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if c.Get(fiber.HeaderAuthorization) == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Message: "Unauthorized: missing credential",
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden: invalid or expired token",
			})
		},
	})
}
