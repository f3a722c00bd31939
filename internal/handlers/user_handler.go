package handlers

import (
	"github.com/drilledtools/backend/internal/dto"
	"github.com/drilledtools/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService  *services.UserService
	tokenService *services.TokenService
}

func NewUserHandler(userService *services.UserService, tokenService *services.TokenService) *UserHandler {
	return &UserHandler{userService: userService, tokenService: tokenService}
}

// Upsert handles PUT /user/:email - stores the profile and mints the caller's
// credential. This is the credential issuance path, so it takes no guard.
func (h *UserHandler) Upsert(c *fiber.Ctx) error {
	email := c.Params("email")
	var req dto.UpsertUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	user, err := h.userService.Upsert(email, &req)
	if err != nil {
		return fail(c, err)
	}

	token, err := h.tokenService.Issue(email)
	if err != nil {
		return respondErr(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(dto.UpsertUserResponse{Result: user, Token: token})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.userService.Get(c.Params("email"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// Promote handles PUT /user/admin/:email - elevates the target to admin.
func (h *UserHandler) Promote(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := h.userService.Promote(email); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "User promoted to admin"})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.Params("email")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

// AdminProbe handles GET /admin/:email - the intentionally public role probe.
func (h *UserHandler) AdminProbe(c *fiber.Ctx) error {
	user, err := h.userService.Get(c.Params("email"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.AdminProbeResponse{Admin: user.IsAdmin()})
}
