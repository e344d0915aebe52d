package repositories

import "sareeta/internal/models"

// OrderRepository defines the interface for order data access. Orders are
// immutable once created, so there is no update operation.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByUserID(userID string) ([]models.Order, error)
	DeleteAll() error
}
