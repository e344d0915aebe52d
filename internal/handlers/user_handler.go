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

// UserHandler handles HTTP requests for user registration and lookup.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. The id route
// is registered before the username wildcard so /user/id/{id} never binds
// as a username.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Post("/create", h.HandleCreate)
	userRoutes.Post("/login", h.HandleLogin)
	userRoutes.Get("/id/:id", h.HandleGetByID)
	userRoutes.Get("/:username", h.HandleGetByUsername)
}

// CreateUserRequest is the request body for user registration.
type CreateUserRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=100"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// HandleCreate handles new user registration.
func (h *UserHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
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
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	user, err := h.userService.Create(req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		log.Printf("Error creating user %s: %v", req.Username, err)
		if errors.Is(err, services.ErrUsernameTaken) ||
			errors.Is(err, services.ErrPasswordTooShort) ||
			errors.Is(err, services.ErrPasswordMismatch) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not create user",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create user",
			"error":   err.Error(),
		})
	}

	log.Printf("User %s created", user.Username)
	return c.JSON(user)
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a user and issues a JWT token.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Username and password are required",
		})
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		log.Printf("Login failed for user %s: %v", req.Username, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}

// HandleGetByID retrieves a user by their ID.
func (h *UserHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	user, err := h.userService.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User with ID %s not found", id),
			})
		}
		log.Printf("Error getting user by ID %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve user",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleGetByUsername retrieves a user by their exact username.
func (h *UserHandler) HandleGetByUsername(c *fiber.Ctx) error {
	username := c.Params("username")
	user, err := h.userService.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User %s not found", username),
			})
		}
		log.Printf("Error getting user by username %s: %v", username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve user",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}
