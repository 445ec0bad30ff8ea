package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solemart/storefront/internal/constants"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

func setupPromotionServiceTest(t *testing.T) (*PromotionService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:promotion_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Promotion{}, &models.PromotionTarget{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewPromotionService(repository.NewPromotionRepository(db)), db
}

func createTestPromotion(t *testing.T, db *gorm.DB, promo models.Promotion) models.Promotion {
	t.Helper()

	if err := db.Create(&promo).Error; err != nil {
		t.Fatalf("create promotion failed: %v", err)
	}
	return promo
}

func money(amount int64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromInt(amount))
}

func TestResolvePercentageDiscount(t *testing.T) {
	svc, db := setupPromotionServiceTest(t)
	createTestPromotion(t, db, models.Promotion{
		Code:         "SAVE10",
		DiscountType: constants.DiscountTypePercentage,
		Value:        money(10),
		Scope:        constants.PromotionScopeAll,
		IsActive:     true,
	})

	resolved, err := svc.Resolve("save10", money(100000), nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.Discount.String() != "10000.00" {
		t.Fatalf("expected discount 10000.00, got %s", resolved.Discount.String())
	}
	if resolved.Promotion.Code != "SAVE10" {
		t.Fatalf("expected code SAVE10, got %s", resolved.Promotion.Code)
	}
}

func TestResolveFixedDiscountClampedToSubtotal(t *testing.T) {
	svc, db := setupPromotionServiceTest(t)
	createTestPromotion(t, db, models.Promotion{
		Code:         "BULK5000",
		DiscountType: constants.DiscountTypeFixed,
		Value:        money(5000),
		Scope:        constants.PromotionScopeAll,
		IsActive:     true,
	})

	resolved, err := svc.Resolve("BULK5000", money(3000), nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.Discount.String() != "3000.00" {
		t.Fatalf("expected discount clamped to 3000.00, got %s", resolved.Discount.String())
	}
}

func TestResolveMinimumSubtotalNotMet(t *testing.T) {
	svc, db := setupPromotionServiceTest(t)
	minimum := money(50000)
	createTestPromotion(t, db, models.Promotion{
		Code:         "BULK5000",
		DiscountType: constants.DiscountTypeFixed,
		Value:        money(5000),
		MinSubtotal:  &minimum,
		Scope:        constants.PromotionScopeAll,
		IsActive:     true,
	})

	if _, err := svc.Resolve("BULK5000", money(49999), nil); err != ErrPromotionMinimumNotMet {
		t.Fatalf("expected ErrPromotionMinimumNotMet, got %v", err)
	}
	if _, err := svc.Resolve("BULK5000", money(50000), nil); err != nil {
		t.Fatalf("expected resolve at exact minimum, got %v", err)
	}
}

func TestResolveInactiveOrWindowedCode(t *testing.T) {
	svc, db := setupPromotionServiceTest(t)

	createTestPromotion(t, db, models.Promotion{
		Code:         "DISABLED",
		DiscountType: constants.DiscountTypePercentage,
		Value:        money(10),
		Scope:        constants.PromotionScopeAll,
		IsActive:     false,
	})
	future := time.Now().Add(48 * time.Hour)
	createTestPromotion(t, db, models.Promotion{
		Code:         "NOTYET",
		DiscountType: constants.DiscountTypePercentage,
		Value:        money(10),
		Scope:        constants.PromotionScopeAll,
		StartAt:      &future,
		IsActive:     true,
	})
	past := time.Now().Add(-48 * time.Hour)
	createTestPromotion(t, db, models.Promotion{
		Code:         "EXPIRED",
		DiscountType: constants.DiscountTypePercentage,
		Value:        money(10),
		Scope:        constants.PromotionScopeAll,
		EndAt:        &past,
		IsActive:     true,
	})

	for _, code := range []string{"DISABLED", "NOTYET", "EXPIRED", "UNKNOWN", ""} {
		if _, err := svc.Resolve(code, money(100000), nil); err != ErrPromotionNotFound {
			t.Fatalf("code %q: expected ErrPromotionNotFound, got %v", code, err)
		}
	}
}

func TestResolveProductScope(t *testing.T) {
	svc, db := setupPromotionServiceTest(t)
	promo := createTestPromotion(t, db, models.Promotion{
		Code:         "NIKEONLY",
		DiscountType: constants.DiscountTypePercentage,
		Value:        money(15),
		Scope:        constants.PromotionScopeProducts,
		IsActive:     true,
	})
	if err := db.Create(&models.PromotionTarget{
		PromotionID: promo.ID,
		TargetType:  constants.PromotionTargetProduct,
		TargetID:    7,
	}).Error; err != nil {
		t.Fatalf("create target failed: %v", err)
	}

	if _, err := svc.Resolve("NIKEONLY", money(100000), []ScopeItem{{ProductID: 8, CategoryID: 1}}); err != ErrPromotionProductScope {
		t.Fatalf("expected ErrPromotionProductScope, got %v", err)
	}
	resolved, err := svc.Resolve("NIKEONLY", money(100000), []ScopeItem{
		{ProductID: 8, CategoryID: 1},
		{ProductID: 7, CategoryID: 2},
	})
	if err != nil {
		t.Fatalf("expected scope match via one line, got %v", err)
	}
	if resolved.Discount.String() != "15000.00" {
		t.Fatalf("expected discount 15000.00, got %s", resolved.Discount.String())
	}
}

func TestResolveCategoryScope(t *testing.T) {
	svc, db := setupPromotionServiceTest(t)
	promo := createTestPromotion(t, db, models.Promotion{
		Code:         "RUNNING20",
		DiscountType: constants.DiscountTypePercentage,
		Value:        money(20),
		Scope:        constants.PromotionScopeCategories,
		IsActive:     true,
	})
	if err := db.Create(&models.PromotionTarget{
		PromotionID: promo.ID,
		TargetType:  constants.PromotionTargetCategory,
		TargetID:    3,
	}).Error; err != nil {
		t.Fatalf("create target failed: %v", err)
	}

	if _, err := svc.Resolve("RUNNING20", money(60000), []ScopeItem{{ProductID: 1, CategoryID: 9}}); err != ErrPromotionCategoryScope {
		t.Fatalf("expected ErrPromotionCategoryScope, got %v", err)
	}
	if _, err := svc.Resolve("RUNNING20", money(60000), []ScopeItem{{ProductID: 1, CategoryID: 3}}); err != nil {
		t.Fatalf("expected category scope match, got %v", err)
	}
}

func TestResolveNegativeValueYieldsZeroDiscount(t *testing.T) {
	svc, db := setupPromotionServiceTest(t)
	createTestPromotion(t, db, models.Promotion{
		Code:         "BROKEN",
		DiscountType: constants.DiscountTypeFixed,
		Value:        models.NewMoneyFromDecimal(decimal.NewFromInt(-500)),
		Scope:        constants.PromotionScopeAll,
		IsActive:     true,
	})

	resolved, err := svc.Resolve("BROKEN", money(10000), nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !resolved.Discount.Decimal.IsZero() {
		t.Fatalf("expected zero discount for negative value, got %s", resolved.Discount.String())
	}
}
