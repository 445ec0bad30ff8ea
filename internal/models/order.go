package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a checkout snapshot. Amounts are frozen at creation time and
// never recomputed from the catalog.
type Order struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	OrderNo        string         `gorm:"uniqueIndex;not null" json:"order_no"`
	SessionKey     string         `gorm:"size:64;index" json:"-"`
	Status         string         `gorm:"index;not null" json:"status"`
	Currency       string         `gorm:"size:8;not null" json:"currency"`
	CustomerName   string         `gorm:"size:128;not null" json:"customer_name"`
	CustomerPhone  string         `gorm:"size:32;not null;index" json:"customer_phone"`
	CustomerEmail  string         `gorm:"size:128;index" json:"customer_email,omitempty"`
	DeliveryZone   string         `gorm:"size:64;not null" json:"delivery_zone"`
	DeliveryAddr   string         `gorm:"size:512" json:"delivery_address,omitempty"`
	RequiresQuote  bool           `gorm:"not null;default:false" json:"requires_delivery_quote"`
	Subtotal       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	DiscountAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"`
	DeliveryFee    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"delivery_fee"`
	TotalAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	PromotionID    *uint          `gorm:"index" json:"promotion_id,omitempty"`
	PromotionCode  string         `gorm:"size:64" json:"promotion_code,omitempty"`
	PaymentMethod  string         `gorm:"size:32;not null" json:"payment_method"`
	PaymentRef     string         `gorm:"size:128;index" json:"payment_ref,omitempty"`
	Note           string         `gorm:"size:512" json:"note,omitempty"`
	ClientIP       string         `gorm:"type:varchar(64)" json:"-"`
	PaidAt         *time.Time     `gorm:"index" json:"paid_at"`
	CanceledAt     *time.Time     `gorm:"index" json:"canceled_at"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
