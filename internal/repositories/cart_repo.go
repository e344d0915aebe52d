package repositories

import "sareeta/internal/models"

// CartRepository defines the interface for cart data access. Save replaces
// the stored item sequence with the cart's current one (insert-or-update).
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByID(id string) (*models.Cart, error)
	Save(cart *models.Cart) error
	DeleteAll() error
}
