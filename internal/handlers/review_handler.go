package handlers

import (
	"github.com/drilledtools/backend/internal/authctx"
	"github.com/drilledtools/backend/internal/dto"
	"github.com/drilledtools/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	reviews, err := h.reviewService.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reviews)
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	email, err := authctx.GetEmail(c)
	if err != nil {
		return respondErr(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	review, err := h.reviewService.Create(email, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
