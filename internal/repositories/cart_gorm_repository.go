package repositories

import (
	"errors"
	"fmt"

	"sareeta/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository. Cart items
// live in their own table keyed by cart ID; the row id preserves insertion
// order, so loads always sort on it.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Create creates a new cart in the database.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	if err := r.db.Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// GetByID retrieves a cart with its item sequence from the database.
func (r *GORMCartRepository) GetByID(id string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_items.id")
	}).First(&cart, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart by ID %s: %w", id, err)
	}
	return &cart, nil
}

// Save persists the cart and replaces its stored item sequence with the
// current one. GORM's Save does not delete removed association rows, so the
// replacement is done explicitly inside one transaction.
func (r *GORMCartRepository) Save(cart *models.Cart) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Items").Save(cart).Error; err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return nil
		}
		for i := range cart.Items {
			cart.Items[i].ID = 0
			cart.Items[i].CartID = cart.ID
		}
		return tx.Create(&cart.Items).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save cart %s: %w", cart.ID, err)
	}
	return nil
}

// DeleteAll removes every cart and cart item. Intended for tests.
func (r *GORMCartRepository) DeleteAll() error {
	if err := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete all cart items: %w", err)
	}
	if err := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Cart{}).Error; err != nil {
		return fmt.Errorf("failed to delete all carts: %w", err)
	}
	return nil
}
