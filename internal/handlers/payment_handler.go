package handlers

import (
	"github.com/drilledtools/backend/internal/dto"
	"github.com/drilledtools/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntent handles POST /create-payment-intent. A preparatory step only;
// purchase state changes through the confirmation path.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	intent, err := h.paymentService.CreateIntent(c.Context(), req.Price)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.CreatePaymentIntentResponse{ClientSecret: intent.ClientSecret})
}
