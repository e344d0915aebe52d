package handlers

import (
	"errors"
	"fmt"
	"log"

	"sareeta/internal/repositories"
	"sareeta/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for the read-only item catalog.
type ItemHandler struct {
	service *services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{
		service: service,
	}
}

// RegisterRoutes registers the item routes with the Fiber app. The name
// route is registered before the id wildcard.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/item")
	itemRoutes.Get("/", h.HandleGetItems)
	itemRoutes.Get("/name/:name", h.HandleGetItemsByName)
	itemRoutes.Get("/:id", h.HandleGetItemByID)
}

// HandleGetItems retrieves every item in the catalog.
func (h *ItemHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAll()
	if err != nil {
		log.Printf("Error getting all items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve items",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleGetItemByID retrieves a single item by its ID.
func (h *ItemHandler) HandleGetItemByID(c *fiber.Ctx) error {
	id := c.Params("id")
	item, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Item with ID %s not found", id),
			})
		}
		log.Printf("Error getting item by ID %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve item",
			"error":   err.Error(),
		})
	}
	return c.JSON(item)
}

// HandleGetItemsByName retrieves all items with an exact-matching name.
// Zero matches map to 404, not an empty list.
func (h *ItemHandler) HandleGetItemsByName(c *fiber.Ctx) error {
	name := c.Params("name")
	items, err := h.service.GetByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No items named %s found", name),
			})
		}
		log.Printf("Error getting items by name %s: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve items",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}
