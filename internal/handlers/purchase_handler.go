package handlers

import (
	"github.com/drilledtools/backend/internal/authctx"
	"github.com/drilledtools/backend/internal/dto"
	"github.com/drilledtools/backend/internal/models"
	"github.com/drilledtools/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	purchaseService *services.PurchaseService
	paymentService  *services.PaymentService
	userService     *services.UserService
}

func NewPurchaseHandler(purchaseService *services.PurchaseService, paymentService *services.PaymentService, userService *services.UserService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		paymentService:  paymentService,
		userService:     userService,
	}
}

// List handles GET /purchased - the caller's own purchases. A ?buyer= for
// someone else requires the admin role.
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	email, err := authctx.GetEmail(c)
	if err != nil {
		return respondErr(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	buyer := c.Query("buyer", email)
	if buyer != email {
		admin, err := h.userService.IsAdmin(email)
		if err != nil {
			return fail(c, err)
		}
		if !admin {
			return respondErr(c, fiber.StatusForbidden, "Forbidden access")
		}
	}

	purchases, err := h.purchaseService.ListByBuyer(buyer)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(purchases)
}

// ListAll handles GET /purchases (admin-gated at the route).
func (h *PurchaseHandler) ListAll(c *fiber.Ctx) error {
	purchases, err := h.purchaseService.ListAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(purchases)
}

func (h *PurchaseHandler) Get(c *fiber.Ctx) error {
	purchase, err := h.ownedPurchase(c)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(purchase)
}

func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	email, err := authctx.GetEmail(c)
	if err != nil {
		return respondErr(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	purchase, err := h.purchaseService.Create(email, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// ConfirmPayment handles PATCH /purchased/:id. Repeat confirmations are a
// no-op returning the already-paid purchase.
func (h *PurchaseHandler) ConfirmPayment(c *fiber.Ctx) error {
	purchase, err := h.ownedPurchase(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.ConfirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	updated, err := h.paymentService.ConfirmPayment(purchase.ID, req.TransactionID, req.Amount, req.Currency)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated)
}

// ConfirmDelivery handles POST /purchased/:id (admin-gated at the route).
func (h *PurchaseHandler) ConfirmDelivery(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondErr(c, fiber.StatusBadRequest, "Invalid purchase id")
	}
	purchase, err := h.purchaseService.ConfirmDelivery(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(purchase)
}

func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	purchase, err := h.ownedPurchase(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.purchaseService.Delete(purchase.ID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Purchase deleted"})
}

// ownedPurchase loads the purchase from :id and enforces the self-or-admin
// rule against the authenticated email.
func (h *PurchaseHandler) ownedPurchase(c *fiber.Ctx) (*models.Purchase, error) {
	email, err := authctx.GetEmail(c)
	if err != nil {
		return nil, services.ErrForbidden
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, services.ErrNotFound
	}

	purchase, err := h.purchaseService.Get(id)
	if err != nil {
		return nil, err
	}

	if purchase.Buyer != email {
		admin, err := h.userService.IsAdmin(email)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, services.ErrForbidden
		}
	}
	return purchase, nil
}
