package models

import "gorm.io/gorm"

// Item is a catalog entry. Price is fixed once the item is created, which
// is why cart and order lines may safely copy it.
type Item struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" gorm:"index;type:varchar(100)" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	gorm.Model  `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}
