package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

// maxLineQuantity caps a single cart line.
const maxLineQuantity = 99

// CartService manages session-keyed shopping carts.
type CartService struct {
	cartRepo    repository.CartRepository
	variantRepo repository.VariantRepository
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, variantRepo repository.VariantRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		variantRepo: variantRepo,
	}
}

// NewSessionKey issues a fresh cart session key.
func (s *CartService) NewSessionKey() string {
	return uuid.NewString()
}

// Get returns the open cart for a session, creating one when absent.
func (s *CartService) Get(sessionKey string) (*models.Cart, error) {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return nil, ErrCartNotFound
	}
	cart, err := s.cartRepo.GetBySession(sessionKey)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	cart = &models.Cart{SessionKey: sessionKey, IsOpen: true}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return s.cartRepo.GetBySession(sessionKey)
}

// AddItem adds a variant to the cart, accumulating quantity on repeat adds.
func (s *CartService) AddItem(sessionKey string, variantID uint, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	variant, err := s.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, ErrVariantNotFound
	}
	if !variant.IsActive || !variant.InStock {
		return nil, ErrVariantUnavailable
	}
	if variant.Product != nil && !variant.Product.IsActive {
		return nil, ErrVariantUnavailable
	}

	cart, err := s.Get(sessionKey)
	if err != nil {
		return nil, err
	}

	item := &models.CartItem{
		CartID:    cart.ID,
		VariantID: variantID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.UpsertItem(item); err != nil {
		return nil, err
	}
	if err := s.clampQuantity(cart.ID, variantID); err != nil {
		return nil, err
	}
	return s.cartRepo.GetBySession(cart.SessionKey)
}

func (s *CartService) clampQuantity(cartID, variantID uint) error {
	item, err := s.cartRepo.GetItem(cartID, variantID)
	if err != nil {
		return err
	}
	if item == nil || item.Quantity <= maxLineQuantity {
		return nil
	}
	return s.cartRepo.UpdateItemQuantity(item.ID, maxLineQuantity)
}

// UpdateQuantity sets an absolute quantity on a cart line. A quantity of
// zero or less removes the line; an unknown line or a session without a
// cart yet is a no-op.
func (s *CartService) UpdateQuantity(sessionKey string, variantID uint, quantity int) (*models.Cart, error) {
	if quantity > maxLineQuantity {
		quantity = maxLineQuantity
	}
	cart, err := s.Get(sessionKey)
	if err != nil {
		return nil, err
	}
	item, err := s.cartRepo.GetItem(cart.ID, variantID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return cart, nil
	}
	if quantity <= 0 {
		if err := s.cartRepo.DeleteItem(cart.ID, variantID); err != nil {
			return nil, err
		}
	} else if err := s.cartRepo.UpdateItemQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.GetBySession(cart.SessionKey)
}

// RemoveItem drops one variant line from the cart. An absent line or a
// session without a cart yet is a no-op.
func (s *CartService) RemoveItem(sessionKey string, variantID uint) (*models.Cart, error) {
	cart, err := s.Get(sessionKey)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.DeleteItem(cart.ID, variantID); err != nil {
		return nil, err
	}
	return s.cartRepo.GetBySession(cart.SessionKey)
}

// Clear empties the cart.
func (s *CartService) Clear(sessionKey string) error {
	cart, err := s.cartRepo.GetBySession(strings.TrimSpace(sessionKey))
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	return s.cartRepo.ClearItems(cart.ID)
}

// Subtotal sums quantity times effective unit price over the cart lines.
func (s *CartService) Subtotal(cart *models.Cart) models.Money {
	total := decimal.Zero
	if cart == nil {
		return models.NewMoneyFromDecimal(total)
	}
	for _, item := range cart.Items {
		if item.Variant == nil {
			continue
		}
		price := item.Variant.EffectivePrice()
		line := price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return models.NewMoneyFromDecimal(total)
}
