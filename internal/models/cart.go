package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart is a session-keyed shopping cart.
type Cart struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	SessionKey string         `gorm:"size:64;not null;uniqueIndex" json:"session_key"`
	IsOpen     bool           `gorm:"not null;default:true;index" json:"is_open"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Cart) TableName() string {
	return "carts"
}

// CartItem is one variant line in a cart. Lines are session scratch data
// and are hard-deleted so a removed variant frees its slot in
// idx_cart_variant for later re-adds.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CartID    uint      `gorm:"not null;index:idx_cart_variant,unique" json:"cart_id"`
	VariantID uint      `gorm:"not null;index:idx_cart_variant,unique" json:"variant_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`

	Variant *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
