package models

import (
	"time"

	"gorm.io/gorm"
)

// Size is a catalog size option (e.g. EU 42, UK 8).
type Size struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Label     string         `gorm:"uniqueIndex;not null" json:"label"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Size) TableName() string {
	return "sizes"
}
