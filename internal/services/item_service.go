package services

import (
	"sareeta/internal/models"
	"sareeta/internal/repositories"
)

// ItemService exposes the read-only catalog.
type ItemService struct {
	itemRepo repositories.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo repositories.ItemRepository) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
	}
}

// GetByID retrieves a single item by its ID.
func (s *ItemService) GetByID(id string) (*models.Item, error) {
	return s.itemRepo.GetByID(id)
}

// GetByName retrieves all items with an exact-matching name.
func (s *ItemService) GetByName(name string) ([]models.Item, error) {
	return s.itemRepo.GetByName(name)
}

// GetAll retrieves every item in store order.
func (s *ItemService) GetAll() ([]models.Item, error) {
	return s.itemRepo.GetAll()
}
