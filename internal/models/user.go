package models

import "gorm.io/gorm"

// User represents a registered customer. Password holds the bcrypt hash,
// never the plaintext; the hash is what the create endpoint returns.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password   string `json:"password" gorm:"type:varchar(255)"`
	CartID     string `json:"cart_id" gorm:"type:varchar(36)"`
	gorm.Model `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}
