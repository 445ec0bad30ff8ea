package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solemart/storefront/internal/models"
)

// CartRepository is the session cart data access interface.
type CartRepository interface {
	GetBySession(sessionKey string) (*models.Cart, error)
	Create(cart *models.Cart) error
	GetItem(cartID, variantID uint) (*models.CartItem, error)
	UpsertItem(item *models.CartItem) error
	UpdateItemQuantity(itemID uint, quantity int) error
	DeleteItem(cartID, variantID uint) error
	ClearItems(cartID uint) error
	Close(cartID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetBySession fetches the open cart for a session with variant snapshots.
func (r *GormCartRepository) GetBySession(sessionKey string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id")
		}).
		Preload("Items.Variant").
		Preload("Items.Variant.Product").
		Preload("Items.Variant.Size").
		Where("session_key = ? AND is_open = ?", sessionKey, true).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Create inserts a cart, reopening the closed cart of a returning session.
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_open": true,
		}),
	}).Create(cart).Error
}

// GetItem fetches one cart line.
func (r *GormCartRepository) GetItem(cartID, variantID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND variant_id = ?", cartID, variantID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// UpsertItem inserts a cart line or accumulates its quantity.
func (r *GormCartRepository) UpsertItem(item *models.CartItem) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "variant_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", item.Quantity),
		}),
	}).Create(item).Error
}

// UpdateItemQuantity sets an absolute quantity on a cart line.
func (r *GormCartRepository) UpdateItemQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

// DeleteItem removes one cart line.
func (r *GormCartRepository) DeleteItem(cartID, variantID uint) error {
	return r.db.Where("cart_id = ? AND variant_id = ?", cartID, variantID).
		Delete(&models.CartItem{}).Error
}

// ClearItems removes all lines from a cart.
func (r *GormCartRepository) ClearItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// Close marks a cart as no longer open, e.g. after checkout.
func (r *GormCartRepository) Close(cartID uint) error {
	return r.db.Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("is_open", false).Error
}
