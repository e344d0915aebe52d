package repositories

import "sareeta/internal/models"

// ItemRepository defines the interface for catalog item data access.
type ItemRepository interface {
	Create(item *models.Item) error
	GetByID(id string) (*models.Item, error)
	GetByName(name string) ([]models.Item, error)
	GetAll() ([]models.Item, error)
	DeleteAll() error
}
