package handlers

import (
	"github.com/drilledtools/backend/internal/dto"
	"github.com/drilledtools/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ItemHandler struct {
	catalogService *services.CatalogService
}

func NewItemHandler(catalogService *services.CatalogService) *ItemHandler {
	return &ItemHandler{catalogService: catalogService}
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.catalogService.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondErr(c, fiber.StatusBadRequest, "Invalid item id")
	}
	item, err := h.catalogService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	item, err := h.catalogService.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondErr(c, fiber.StatusBadRequest, "Invalid item id")
	}
	var req dto.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	item, err := h.catalogService.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondErr(c, fiber.StatusBadRequest, "Invalid item id")
	}
	if err := h.catalogService.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item deleted"})
}
