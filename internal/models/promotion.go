package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/solemart/storefront/internal/constants"
)

// Promotion is a code-redeemed discount with an optional validity window
// and an optional product/category scope.
type Promotion struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Code         string         `gorm:"size:64;not null;uniqueIndex" json:"code"`
	Description  string         `gorm:"size:255" json:"description"`
	DiscountType string         `gorm:"size:16;not null" json:"discount_type"`
	Value        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"value"`
	MinSubtotal  *Money         `gorm:"type:decimal(20,2)" json:"min_subtotal,omitempty"`
	Scope        string         `gorm:"size:16;not null;default:all" json:"scope"`
	StartAt      *time.Time     `json:"start_at,omitempty"`
	EndAt        *time.Time     `json:"end_at,omitempty"`
	IsActive     bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Targets []PromotionTarget `gorm:"foreignKey:PromotionID" json:"targets,omitempty"`
}

// TableName sets the table name.
func (Promotion) TableName() string {
	return "promotions"
}

// WithinWindow reports whether now falls inside the promotion's validity
// window. A nil bound is open-ended.
func (p Promotion) WithinWindow(now time.Time) bool {
	if p.StartAt != nil && now.Before(*p.StartAt) {
		return false
	}
	if p.EndAt != nil && now.After(*p.EndAt) {
		return false
	}
	return true
}

// ProductIDs returns the product IDs targeted by a product-scoped promotion.
func (p Promotion) ProductIDs() []uint {
	ids := make([]uint, 0, len(p.Targets))
	for _, t := range p.Targets {
		if t.TargetType == constants.PromotionTargetProduct {
			ids = append(ids, t.TargetID)
		}
	}
	return ids
}

// CategoryIDs returns the category IDs targeted by a category-scoped promotion.
func (p Promotion) CategoryIDs() []uint {
	ids := make([]uint, 0, len(p.Targets))
	for _, t := range p.Targets {
		if t.TargetType == constants.PromotionTargetCategory {
			ids = append(ids, t.TargetID)
		}
	}
	return ids
}

// PromotionTarget binds a scoped promotion to one product or category.
type PromotionTarget struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	PromotionID uint      `gorm:"not null;index:idx_promo_target,unique" json:"promotion_id"`
	TargetType  string    `gorm:"size:16;not null;index:idx_promo_target,unique" json:"target_type"`
	TargetID    uint      `gorm:"not null;index:idx_promo_target,unique" json:"target_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the table name.
func (PromotionTarget) TableName() string {
	return "promotion_targets"
}
