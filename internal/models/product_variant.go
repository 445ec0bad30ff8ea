package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductVariant is a purchasable size/price combination of a product.
type ProductVariant struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	ProductID  uint           `gorm:"not null;index" json:"product_id"`
	SizeID     uint           `gorm:"not null;index" json:"size_id"`
	Price      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	PromoPrice *Money         `gorm:"type:decimal(20,2)" json:"promo_price,omitempty"`
	InStock    bool           `gorm:"not null;default:true" json:"in_stock"`
	IsActive   bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Size    Size     `gorm:"foreignKey:SizeID" json:"size,omitempty"`
}

// TableName sets the table name.
func (ProductVariant) TableName() string {
	return "product_variants"
}

// EffectivePrice returns the promo price when set, otherwise the base price.
func (v ProductVariant) EffectivePrice() Money {
	if v.PromoPrice != nil {
		return *v.PromoPrice
	}
	return v.Price
}
