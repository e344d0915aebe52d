package repositories

import (
	"errors"
	"fmt"

	"sareeta/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// Create creates a new catalog item in the database.
func (r *GORMItemRepository) Create(item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// GetByID retrieves a single item by its ID from the database.
func (r *GORMItemRepository) GetByID(id string) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get item by ID %s: %w", id, err)
	}
	return &item, nil
}

// GetByName retrieves all items with an exact-matching name. A name with no
// matches is reported as ErrNotFound rather than an empty list.
func (r *GORMItemRepository) GetByName(name string) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Find(&items, "name = ?", name).Error; err != nil {
		return nil, fmt.Errorf("failed to get items by name %s: %w", name, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("items with name %s: %w", name, ErrNotFound)
	}
	return items, nil
}

// GetAll retrieves every item in store order.
func (r *GORMItemRepository) GetAll() ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Order("created_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all items: %w", err)
	}
	return items, nil
}

// DeleteAll removes every item. Intended for tests and local resets.
func (r *GORMItemRepository) DeleteAll() error {
	if err := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Item{}).Error; err != nil {
		return fmt.Errorf("failed to delete all items: %w", err)
	}
	return nil
}
