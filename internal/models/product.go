package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog product.
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	BrandID     uint           `gorm:"not null;index" json:"brand_id"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Images      StringArray    `gorm:"type:json" json:"images"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Brand    Brand            `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Category Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
