package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:cart_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Brand{},
		&models.Category{},
		&models.Size{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCartService(repository.NewCartRepository(db), repository.NewVariantRepository(db)), db
}

func createTestVariant(t *testing.T, db *gorm.DB, slug string, price int64, promoPrice int64, inStock bool) models.ProductVariant {
	t.Helper()

	brand := models.Brand{Slug: slug + "-brand", Name: "Brand " + slug}
	if err := db.Create(&brand).Error; err != nil {
		t.Fatalf("create brand failed: %v", err)
	}
	category := models.Category{Slug: slug + "-category", Name: "Category " + slug}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	size := models.Size{Label: "EU 42 " + slug}
	if err := db.Create(&size).Error; err != nil {
		t.Fatalf("create size failed: %v", err)
	}
	product := models.Product{
		BrandID:    brand.ID,
		CategoryID: category.ID,
		Slug:       slug,
		Name:       "Product " + slug,
		IsActive:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	variant := models.ProductVariant{
		ProductID: product.ID,
		SizeID:    size.ID,
		Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		InStock:   inStock,
		IsActive:  true,
	}
	if promoPrice > 0 {
		promo := models.NewMoneyFromDecimal(decimal.NewFromInt(promoPrice))
		variant.PromoPrice = &promo
	}
	if err := db.Create(&variant).Error; err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	return variant
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	variant := createTestVariant(t, db, "af1", 85000, 0, true)

	session := svc.NewSessionKey()
	if _, err := svc.AddItem(session, variant.ID, 1); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	cart, err := svc.AddItem(session, variant.ID, 2)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected a single cart line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Fatalf("expected accumulated quantity 3, got %d", cart.Items[0].Quantity)
	}
}

func TestAddItemRejectsUnavailableVariant(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	variant := createTestVariant(t, db, "sold-out", 85000, 0, false)

	if _, err := svc.AddItem(svc.NewSessionKey(), variant.ID, 1); err != ErrVariantUnavailable {
		t.Fatalf("expected ErrVariantUnavailable, got %v", err)
	}
	if _, err := svc.AddItem(svc.NewSessionKey(), 99999, 1); err != ErrVariantNotFound {
		t.Fatalf("expected ErrVariantNotFound, got %v", err)
	}
	if _, err := svc.AddItem(svc.NewSessionKey(), variant.ID, 0); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	variant := createTestVariant(t, db, "ub-light", 120000, 0, true)

	session := svc.NewSessionKey()
	if _, err := svc.AddItem(session, variant.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	cart, err := svc.UpdateQuantity(session, variant.ID, 0)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart after zero-quantity update, got %d lines", len(cart.Items))
	}
}

func TestUpdateQuantityUnknownLineIsNoOp(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	variant := createTestVariant(t, db, "nb550", 95000, 0, true)

	session := svc.NewSessionKey()
	if _, err := svc.AddItem(session, variant.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	cart, err := svc.UpdateQuantity(session, 424242, 5)
	if err != nil {
		t.Fatalf("expected no-op for unknown line, got %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Fatalf("expected cart untouched, got %+v", cart.Items)
	}
}

func TestUpdateQuantityClampsToMax(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	variant := createTestVariant(t, db, "slide", 18500, 0, true)

	session := svc.NewSessionKey()
	if _, err := svc.AddItem(session, variant.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	cart, err := svc.UpdateQuantity(session, variant.ID, 500)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if cart.Items[0].Quantity != maxLineQuantity {
		t.Fatalf("expected quantity clamped to %d, got %d", maxLineQuantity, cart.Items[0].Quantity)
	}
}

func TestAddItemAfterRemoveRestoresLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	variant := createTestVariant(t, db, "re-add", 85000, 0, true)

	session := svc.NewSessionKey()
	if _, err := svc.AddItem(session, variant.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.RemoveItem(session, variant.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	cart, err := svc.AddItem(session, variant.ID, 3)
	if err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected one cart line after re-add, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Fatalf("expected fresh quantity 3 after re-add, got %d", cart.Items[0].Quantity)
	}
}

func TestAddItemAfterClearRestoresLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	variant := createTestVariant(t, db, "re-add-clear", 50000, 0, true)

	session := svc.NewSessionKey()
	if _, err := svc.AddItem(session, variant.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Clear(session); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	cart, err := svc.AddItem(session, variant.ID, 2)
	if err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2 after re-add, got %+v", cart.Items)
	}
}

func TestUpdateAndRemoveOnFreshSessionAreNoOps(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	session := svc.NewSessionKey()
	cart, err := svc.UpdateQuantity(session, 424242, 5)
	if err != nil {
		t.Fatalf("expected no-op update on fresh session, got %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Items))
	}

	cart, err = svc.RemoveItem(svc.NewSessionKey(), 424242)
	if err != nil {
		t.Fatalf("expected no-op remove on fresh session, got %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Items))
	}
}

func TestSubtotalUsesPromoPrice(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	regular := createTestVariant(t, db, "regular", 100000, 0, true)
	discounted := createTestVariant(t, db, "discounted", 100000, 76500, true)

	session := svc.NewSessionKey()
	if _, err := svc.AddItem(session, regular.ID, 1); err != nil {
		t.Fatalf("add regular failed: %v", err)
	}
	cart, err := svc.AddItem(session, discounted.ID, 2)
	if err != nil {
		t.Fatalf("add discounted failed: %v", err)
	}

	subtotal := svc.Subtotal(cart)
	if subtotal.String() != "253000.00" {
		t.Fatalf("expected subtotal 253000.00, got %s", subtotal.String())
	}
}

func TestClearEmptiesCart(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	variant := createTestVariant(t, db, "clearable", 50000, 0, true)

	session := svc.NewSessionKey()
	if _, err := svc.AddItem(session, variant.ID, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Clear(session); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	cart, err := svc.Get(session)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Items))
	}
}
