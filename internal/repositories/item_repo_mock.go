package repositories

import (
	"fmt"
	"sync"

	"sareeta/internal/models"

	"github.com/google/uuid"
)

// MockItemRepository is an in-memory implementation of ItemRepository.
// Insertion order is kept so GetAll returns items in store order.
type MockItemRepository struct {
	items map[string]models.Item
	order []string
	mu    sync.RWMutex
}

// NewMockItemRepository creates a new instance of MockItemRepository.
func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{
		items: make(map[string]models.Item),
	}
}

// Create adds a new item, assigning an ID if missing.
func (r *MockItemRepository) Create(item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = *item
	return nil
}

// GetByID returns an item by its ID.
func (r *MockItemRepository) GetByID(id string) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("item with ID %s: %w", id, ErrNotFound)
	}
	return &item, nil
}

// GetByName returns all items with an exact-matching name, ErrNotFound when
// there are none.
func (r *MockItemRepository) GetByName(name string) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.Item
	for _, id := range r.order {
		if item := r.items[id]; item.Name == name {
			matches = append(matches, item)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("items with name %s: %w", name, ErrNotFound)
	}
	return matches, nil
}

// GetAll returns every item in insertion order.
func (r *MockItemRepository) GetAll() ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.Item, 0, len(r.order))
	for _, id := range r.order {
		itemList = append(itemList, r.items[id])
	}
	return itemList, nil
}

// DeleteAll removes every item.
func (r *MockItemRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]models.Item)
	r.order = nil
	return nil
}
