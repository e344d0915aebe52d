package repositories

import (
	"fmt"

	"sareeta/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create persists a new order together with its snapshot items.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByUserID retrieves all orders submitted by a user, oldest first.
func (r *GORMOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id")
	}).Where("user_id = ?", userID).Order("created_at").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// DeleteAll removes every order and order item. Intended for tests.
func (r *GORMOrderRepository) DeleteAll() error {
	if err := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.OrderItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete all order items: %w", err)
	}
	if err := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Order{}).Error; err != nil {
		return fmt.Errorf("failed to delete all orders: %w", err)
	}
	return nil
}
