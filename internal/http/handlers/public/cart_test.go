package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solemart/storefront/internal/constants"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/provider"
	"github.com/solemart/storefront/internal/repository"
	"github.com/solemart/storefront/internal/service"
)

func setupCartHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:cart_handler_%d?mode=memory&cache=shared", time.Now().UnixNano())
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

	cartRepo := repository.NewCartRepository(db)
	container := &provider.Container{
		CartService: service.NewCartService(cartRepo, repository.NewVariantRepository(db)),
	}
	handler := New(container)

	engine := gin.New()
	cart := engine.Group("/api/v1/cart")
	{
		cart.GET("", handler.GetCart)
		cart.DELETE("", handler.ClearCart)
		cart.POST("/items", handler.AddCartItem)
		cart.PUT("/items/:variantID", handler.UpdateCartItem)
		cart.DELETE("/items/:variantID", handler.RemoveCartItem)
	}
	return engine, db
}

func createHandlerTestVariant(t *testing.T, db *gorm.DB, price int64) models.ProductVariant {
	t.Helper()

	brand := models.Brand{Slug: "test-brand", Name: "Test Brand"}
	if err := db.Create(&brand).Error; err != nil {
		t.Fatalf("create brand failed: %v", err)
	}
	category := models.Category{Slug: "test-category", Name: "Test Category"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	size := models.Size{Label: "EU 42"}
	if err := db.Create(&size).Error; err != nil {
		t.Fatalf("create size failed: %v", err)
	}
	product := models.Product{
		BrandID:    brand.ID,
		CategoryID: category.ID,
		Slug:       "test-sneaker",
		Name:       "Test Sneaker",
		IsActive:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	variant := models.ProductVariant{
		ProductID: product.ID,
		SizeID:    size.ID,
		Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		InStock:   true,
		IsActive:  true,
	}
	if err := db.Create(&variant).Error; err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	return variant
}

type cartEnvelope struct {
	StatusCode int      `json:"status_code"`
	Msg        string   `json:"msg"`
	Data       cartView `json:"data"`
}

func doCartRequest(t *testing.T, engine *gin.Engine, method, path, session string, payload interface{}) cartEnvelope {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload failed: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(constants.CartSessionHeader, session)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected http status %d: %s", recorder.Code, recorder.Body.String())
	}
	var envelope cartEnvelope
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope failed: %v", err)
	}
	return envelope
}

func TestGetCartIssuesSessionKey(t *testing.T) {
	engine, _ := setupCartHandlerTest(t)

	envelope := doCartRequest(t, engine, http.MethodGet, "/api/v1/cart", "", nil)
	if envelope.StatusCode != 0 {
		t.Fatalf("expected success envelope, got %+v", envelope)
	}
	if envelope.Data.SessionKey == "" {
		t.Fatalf("expected a fresh session key in the cart view")
	}
	if len(envelope.Data.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(envelope.Data.Items))
	}
}

func TestCartAddUpdateRemoveFlow(t *testing.T) {
	engine, db := setupCartHandlerTest(t)
	variant := createHandlerTestVariant(t, db, 85000)

	created := doCartRequest(t, engine, http.MethodGet, "/api/v1/cart", "", nil)
	session := created.Data.SessionKey

	added := doCartRequest(t, engine, http.MethodPost, "/api/v1/cart/items", session, gin.H{
		"variant_id": variant.ID,
		"quantity":   2,
	})
	if len(added.Data.Items) != 1 || added.Data.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", added.Data.Items)
	}
	if added.Data.Subtotal.String() != "170000.00" {
		t.Fatalf("expected subtotal 170000.00, got %s", added.Data.Subtotal.String())
	}
	if added.Data.Items[0].LineTotal.String() != "170000.00" {
		t.Fatalf("expected line total 170000.00, got %s", added.Data.Items[0].LineTotal.String())
	}

	updated := doCartRequest(t, engine, http.MethodPut,
		fmt.Sprintf("/api/v1/cart/items/%d", variant.ID), session, gin.H{"quantity": 1})
	if updated.Data.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1 after update, got %d", updated.Data.Items[0].Quantity)
	}

	removed := doCartRequest(t, engine, http.MethodDelete,
		fmt.Sprintf("/api/v1/cart/items/%d", variant.ID), session, nil)
	if len(removed.Data.Items) != 0 {
		t.Fatalf("expected empty cart after remove, got %+v", removed.Data.Items)
	}
}

func TestAddCartItemUnknownVariant(t *testing.T) {
	engine, _ := setupCartHandlerTest(t)

	created := doCartRequest(t, engine, http.MethodGet, "/api/v1/cart", "", nil)
	envelope := doCartRequest(t, engine, http.MethodPost, "/api/v1/cart/items", created.Data.SessionKey, gin.H{
		"variant_id": 999999,
	})
	if envelope.StatusCode == 0 {
		t.Fatalf("expected error envelope for unknown variant, got %+v", envelope)
	}
}
