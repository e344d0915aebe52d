package services

import (
	"errors"
	"fmt"

	"sareeta/internal/models"
	"sareeta/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the minimum accepted plaintext password length.
const minPasswordLength = 7

// UserService handles registration and lookup of users. Every user owns
// exactly one cart, created together with the user.
type UserService struct {
	userRepo repositories.UserRepository
	cartRepo repositories.CartRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, cartRepo repositories.CartRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		cartRepo: cartRepo,
	}
}

// Create registers a new user. The password is bcrypt-hashed before the user
// is persisted; the returned user carries the hash, never the plaintext.
// An empty cart is created and persisted first, then the user referencing
// it. There is no rollback between the two steps: a fault after the cart
// save leaves an orphaned cart behind.
func (s *UserService) Create(username, password, confirmPassword string) (*models.User, error) {
	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, fmt.Errorf("create user %s: %w", username, ErrUsernameTaken)
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username %s: %w", username, err)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("create user %s: %w", username, ErrPasswordTooShort)
	}
	if password != confirmPassword {
		return nil, fmt.Errorf("create user %s: %w", username, ErrPasswordMismatch)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	cart := &models.Cart{}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, fmt.Errorf("failed to create cart for user %s: %w", username, err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashed),
		CartID:   cart.ID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", username, err)
	}
	return user, nil
}

// GetByID retrieves a user by their store-assigned ID.
func (s *UserService) GetByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GetByUsername retrieves a user by their exact username.
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	return s.userRepo.GetByUsername(username)
}
