package handlers

import (
	"errors"
	"fmt"
	"log"

	"sareeta/internal/repositories"
	"sareeta/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for order submission and history.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/order")
	orderRoutes.Post("/submit/:username", h.HandleSubmit)
	orderRoutes.Get("/history/:username", h.HandleHistory)
}

// HandleSubmit creates an order from the user's current cart and returns
// it. The cart itself is not cleared.
func (h *OrderHandler) HandleSubmit(c *fiber.Ctx) error {
	username := c.Params("username")
	order, err := h.service.Submit(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User %s not found", username),
			})
		}
		log.Printf("Error submitting order for user %s: %v", username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not submit order",
			"error":   err.Error(),
		})
	}
	log.Printf("Order %s submitted for user %s, total %.2f", order.ID, username, order.Total)
	return c.JSON(order)
}

// HandleHistory returns every order the user has submitted, oldest first.
func (h *OrderHandler) HandleHistory(c *fiber.Ctx) error {
	username := c.Params("username")
	orders, err := h.service.History(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User %s not found", username),
			})
		}
		log.Printf("Error getting order history for user %s: %v", username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order history",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}
