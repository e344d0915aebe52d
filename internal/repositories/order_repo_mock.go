package repositories

import (
	"sync"
	"time"

	"sareeta/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// Orders are kept per user in submission order.
type MockOrderRepository struct {
	byUser map[string][]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		byUser: make(map[string][]models.Order),
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	stored := *order
	stored.Items = make([]models.OrderItem, len(order.Items))
	copy(stored.Items, order.Items)
	r.byUser[order.UserID] = append(r.byUser[order.UserID], stored)
	return nil
}

// GetByUserID returns all orders submitted by a user, oldest first.
func (r *MockOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byUser[userID]
	orders := make([]models.Order, len(stored))
	copy(orders, stored)
	return orders, nil
}

// DeleteAll removes every order.
func (r *MockOrderRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser = make(map[string][]models.Order)
	return nil
}
