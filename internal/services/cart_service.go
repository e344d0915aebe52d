package services

import (
	"fmt"

	"sareeta/internal/models"
	"sareeta/internal/repositories"
)

// CartService handles cart mutation. Each call is a synchronous
// resolve-mutate-persist sequence with no cart-level locking: two
// concurrent mutations of the same cart can lose an update. Known gap,
// reproduced from the system this was ported from; see DESIGN.md.
type CartService struct {
	userRepo repositories.UserRepository
	itemRepo repositories.ItemRepository
	cartRepo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(userRepo repositories.UserRepository, itemRepo repositories.ItemRepository, cartRepo repositories.CartRepository) *CartService {
	return &CartService{
		userRepo: userRepo,
		itemRepo: itemRepo,
		cartRepo: cartRepo,
	}
}

// AddItem appends the item to the user's cart quantity times, recomputes
// the total and persists the cart. Quantity zero is a no-op that still
// persists and returns the cart unchanged.
func (s *CartService) AddItem(username, itemID string, quantity int) (*models.Cart, error) {
	user, item, cart, err := s.resolve(username, itemID)
	if err != nil {
		return nil, err
	}

	for i := 0; i < quantity; i++ {
		cart.AddItem(item)
	}

	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for user %s: %w", user.Username, err)
	}
	return cart, nil
}

// RemoveItem removes up to quantity occurrences of the item from the user's
// cart, recomputes the total and persists the cart. Requesting more than is
// present removes all present occurrences and is not an error.
func (s *CartService) RemoveItem(username, itemID string, quantity int) (*models.Cart, error) {
	user, item, cart, err := s.resolve(username, itemID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(item.ID, quantity)

	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for user %s: %w", user.Username, err)
	}
	return cart, nil
}

// resolve looks up the user, the item and the user's cart, in that order.
// User and item absence surface as repositories.ErrNotFound.
func (s *CartService) resolve(username, itemID string) (*models.User, *models.Item, *models.Cart, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, nil, nil, err
	}
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, nil, nil, err
	}
	cart, err := s.cartRepo.GetByID(user.CartID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load cart for user %s: %w", username, err)
	}
	return user, item, cart, nil
}
