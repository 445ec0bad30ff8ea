package models

import (
	"time"

	"gorm.io/gorm"
)

// DeliveryZone maps a named delivery area to a flat fee.
type DeliveryZone struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Slug      string         `gorm:"size:64;not null;uniqueIndex" json:"slug"`
	Name      string         `gorm:"size:128;not null" json:"name"`
	Fee       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"fee"`
	SortOrder int            `gorm:"not null;default:0;index" json:"sort_order"`
	IsActive  bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (DeliveryZone) TableName() string {
	return "delivery_zones"
}
