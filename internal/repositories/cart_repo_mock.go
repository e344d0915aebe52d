package repositories

import (
	"fmt"
	"sync"

	"sareeta/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// The map itself is mutex-guarded, but read-modify-write across two
// requests can still lose an update; see the concurrency note in DESIGN.md.
type MockCartRepository struct {
	carts map[string]models.Cart
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.Cart),
	}
}

// Create adds a new cart, assigning an ID if missing.
func (r *MockCartRepository) Create(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	r.carts[cart.ID] = cloneCart(cart)
	return nil
}

// GetByID returns a cart by its ID.
func (r *MockCartRepository) GetByID(id string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, fmt.Errorf("cart with ID %s: %w", id, ErrNotFound)
	}
	c := cloneCart(&cart)
	return &c, nil
}

// Save stores the cart, replacing any previous item sequence.
func (r *MockCartRepository) Save(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cart.ID]; !ok {
		return fmt.Errorf("cart with ID %s: %w", cart.ID, ErrNotFound)
	}
	r.carts[cart.ID] = cloneCart(cart)
	return nil
}

// DeleteAll removes every cart.
func (r *MockCartRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts = make(map[string]models.Cart)
	return nil
}

// cloneCart copies the cart with its item slice so callers never share
// backing arrays with the store.
func cloneCart(cart *models.Cart) models.Cart {
	c := *cart
	c.Items = make([]models.CartItem, len(cart.Items))
	copy(c.Items, cart.Items)
	return c
}
