package handlers

import (
	"errors"
	"log/slog"

	"github.com/drilledtools/backend/internal/dto"
	"github.com/drilledtools/backend/internal/payments"
	"github.com/drilledtools/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// fail maps service errors onto the HTTP taxonomy. Unrecognized errors are
// persistence failures and surface as 503, logged but never swallowed.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return respondErr(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return respondErr(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInsufficientStock):
		return respondErr(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidState):
		return respondErr(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, payments.ErrGatewayUnavailable):
		slog.Error("payment gateway failure", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return respondErr(c, fiber.StatusBadGateway, "Payment gateway unavailable")
	default:
		slog.Error("store failure", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return respondErr(c, fiber.StatusServiceUnavailable, "Store unavailable")
	}
}

func respondErr(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func badBody(c *fiber.Ctx) error {
	return respondErr(c, fiber.StatusBadRequest, "Invalid request body")
}
