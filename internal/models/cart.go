package models

import "gorm.io/gorm"

// CartItem is a single occurrence of an item in a cart. A cart holding
// three of the same item has three rows; the row id preserves insertion
// order. Name and price are copied from the catalog item, which is valid
// because item prices never change after creation.
type CartItem struct {
	ID     uint    `json:"-" gorm:"primaryKey"`
	CartID string  `json:"-" gorm:"index;type:varchar(36)"`
	ItemID string  `json:"item_id" gorm:"type:varchar(36)"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// Cart is a user's mutable collection of item references with a derived
// total. Total must equal the sum of the contained items' prices at all
// times; every mutation goes through RecalculateTotal.
type Cart struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Items      []CartItem `json:"items" gorm:"foreignKey:CartID"`
	Total      float64    `json:"total"`
	gorm.Model `json:"-"`
}

// AddItem appends one occurrence of the given item and refreshes the total.
func (c *Cart) AddItem(item *Item) {
	c.Items = append(c.Items, CartItem{
		CartID: c.ID,
		ItemID: item.ID,
		Name:   item.Name,
		Price:  item.Price,
	})
	c.RecalculateTotal()
}

// RemoveItem removes up to quantity occurrences of the item with the given
// id, earliest occurrences first, and refreshes the total. Removing more
// than is present removes all present occurrences and is not an error.
// Returns the number of occurrences actually removed.
func (c *Cart) RemoveItem(itemID string, quantity int) int {
	removed := 0
	kept := c.Items[:0]
	for _, entry := range c.Items {
		if entry.ItemID == itemID && removed < quantity {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	c.Items = kept
	c.RecalculateTotal()
	return removed
}

// RecalculateTotal recomputes the total as a full sum over the current item
// sequence rather than adjusting incrementally, so the invariant holds even
// if a prior total was wrong.
func (c *Cart) RecalculateTotal() {
	var total float64
	for _, entry := range c.Items {
		total += entry.Price
	}
	c.Total = total
}
