package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solemart/storefront/internal/constants"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

// ScopeItem describes one cart line for promotion scope checks.
type ScopeItem struct {
	ProductID  uint
	CategoryID uint
}

// PromotionScope is the resolved targeting of a promotion.
type PromotionScope struct {
	Kind        string
	ProductIDs  map[uint]bool
	CategoryIDs map[uint]bool
}

// ScopeOf builds the resolved scope from a promotion row and its targets.
func ScopeOf(p *models.Promotion) PromotionScope {
	scope := PromotionScope{
		Kind:        p.Scope,
		ProductIDs:  map[uint]bool{},
		CategoryIDs: map[uint]bool{},
	}
	if scope.Kind == "" {
		scope.Kind = constants.PromotionScopeAll
	}
	for _, id := range p.ProductIDs() {
		scope.ProductIDs[id] = true
	}
	for _, id := range p.CategoryIDs() {
		scope.CategoryIDs[id] = true
	}
	return scope
}

// Matches reports whether any cart line falls inside the scope.
func (s PromotionScope) Matches(items []ScopeItem) bool {
	switch s.Kind {
	case constants.PromotionScopeProducts:
		for _, item := range items {
			if s.ProductIDs[item.ProductID] {
				return true
			}
		}
		return false
	case constants.PromotionScopeCategories:
		for _, item := range items {
			if s.CategoryIDs[item.CategoryID] {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// ResolvedPromotion is the outcome of a successful Resolve call.
type ResolvedPromotion struct {
	Promotion *models.Promotion
	Discount  models.Money
}

// PromotionService validates promotion codes and computes discounts.
type PromotionService struct {
	promoRepo repository.PromotionRepository
	now       func() time.Time
}

// NewPromotionService creates the promotion service.
func NewPromotionService(promoRepo repository.PromotionRepository) *PromotionService {
	return &PromotionService{
		promoRepo: promoRepo,
		now:       time.Now,
	}
}

// Resolve validates a code against the cart and returns the discount.
// The discount is clamped to [0, subtotal].
func (s *PromotionService) Resolve(code string, subtotal models.Money, items []ScopeItem) (*ResolvedPromotion, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, ErrPromotionNotFound
	}

	promotion, err := s.promoRepo.GetByCode(normalized)
	if err != nil {
		return nil, err
	}
	if promotion == nil || !promotion.IsActive || !promotion.WithinWindow(s.now()) {
		return nil, ErrPromotionNotFound
	}

	scope := ScopeOf(promotion)
	if !scope.Matches(items) {
		if scope.Kind == constants.PromotionScopeCategories {
			return nil, ErrPromotionCategoryScope
		}
		return nil, ErrPromotionProductScope
	}

	if promotion.MinSubtotal != nil && subtotal.Decimal.LessThan(promotion.MinSubtotal.Decimal) {
		return nil, ErrPromotionMinimumNotMet
	}

	discount := s.calculateDiscount(promotion, subtotal)
	return &ResolvedPromotion{Promotion: promotion, Discount: discount}, nil
}

func (s *PromotionService) calculateDiscount(promotion *models.Promotion, subtotal models.Money) models.Money {
	var raw decimal.Decimal
	switch promotion.DiscountType {
	case constants.DiscountTypePercentage:
		raw = subtotal.Decimal.Mul(promotion.Value.Decimal).Div(decimal.NewFromInt(100))
	default:
		raw = promotion.Value.Decimal
	}
	if raw.IsNegative() {
		raw = decimal.Zero
	}
	if raw.GreaterThan(subtotal.Decimal) {
		raw = subtotal.Decimal
	}
	return models.NewMoneyFromDecimal(raw)
}
