package models

import "time"

// OrderItem is a single item occurrence captured in an order snapshot.
type OrderItem struct {
	ID      uint    `json:"-" gorm:"primaryKey"`
	OrderID string  `json:"-" gorm:"index;type:varchar(36)"`
	ItemID  string  `json:"item_id" gorm:"type:varchar(36)"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
}

// Order is an immutable point-in-time copy of a cart's contents, associated
// with the user who submitted it. Mutating the source cart afterwards must
// not affect the order.
type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderFromCart builds the snapshot for a submitted cart. Entries and the
// total are copied verbatim; the source cart is left untouched.
func OrderFromCart(user *User, cart *Cart) *Order {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, entry := range cart.Items {
		items = append(items, OrderItem{
			ItemID: entry.ItemID,
			Name:   entry.Name,
			Price:  entry.Price,
		})
	}
	return &Order{
		UserID: user.ID,
		Items:  items,
		Total:  cart.Total,
	}
}
