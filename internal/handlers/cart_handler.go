package handlers

import (
	"errors"
	"fmt"
	"log"

	"sareeta/internal/repositories"
	"sareeta/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for cart mutation.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Post("/addToCart", h.HandleAddToCart)
	cartRoutes.Post("/removeFromCart", h.HandleRemoveFromCart)
}

// ModifyCartRequest is the request body for both cart mutations. Quantity
// must be non-negative; zero is a valid no-op.
type ModifyCartRequest struct {
	Username string `json:"username" validate:"required"`
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// HandleAddToCart appends an item to the user's cart the requested number
// of times and returns the updated cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	req, resp := h.parseRequest(c)
	if req == nil {
		return resp
	}

	cart, err := h.service.AddItem(req.Username, req.ItemID, req.Quantity)
	if err != nil {
		return h.mapServiceError(c, "add to cart", req, err)
	}
	return c.JSON(cart)
}

// HandleRemoveFromCart removes up to the requested number of occurrences of
// an item from the user's cart and returns the updated cart.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	req, resp := h.parseRequest(c)
	if req == nil {
		return resp
	}

	cart, err := h.service.RemoveItem(req.Username, req.ItemID, req.Quantity)
	if err != nil {
		return h.mapServiceError(c, "remove from cart", req, err)
	}
	return c.JSON(cart)
}

// parseRequest binds and validates the shared cart mutation body. A nil
// request means the 400 response has already been written.
func (h *CartHandler) parseRequest(c *fiber.Ctx) (*ModifyCartRequest, error) {
	var req ModifyCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return &req, nil
}

// mapServiceError translates cart service failures into HTTP statuses.
// Absent user or item is a 404; anything else is a 500.
func (h *CartHandler) mapServiceError(c *fiber.Ctx, op string, req *ModifyCartRequest, err error) error {
	log.Printf("Error on %s for user %s item %s: %v", op, req.Username, req.ItemID, err)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User or item not found",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fmt.Sprintf("Could not %s", op),
		"error":   err.Error(),
	})
}
