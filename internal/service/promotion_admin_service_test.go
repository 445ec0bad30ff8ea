package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/solemart/storefront/internal/constants"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

func setupPromotionAdminServiceTest(t *testing.T) (*PromotionAdminService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:promotion_admin_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Promotion{}, &models.PromotionTarget{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewPromotionAdminService(repository.NewPromotionRepository(db)), db
}

func TestCreatePromotionRejectsDuplicateCode(t *testing.T) {
	svc, _ := setupPromotionAdminServiceTest(t)

	first := models.Promotion{
		Code:         "SAVE10",
		DiscountType: constants.DiscountTypePercentage,
		Value:        money(10),
		Scope:        constants.PromotionScopeAll,
		IsActive:     true,
	}
	if err := svc.Create(&first, nil, nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	dup := models.Promotion{
		Code:         "save10",
		DiscountType: constants.DiscountTypeFixed,
		Value:        money(5000),
		Scope:        constants.PromotionScopeAll,
		IsActive:     true,
	}
	if err := svc.Create(&dup, nil, nil); err != ErrPromotionCodeTaken {
		t.Fatalf("expected ErrPromotionCodeTaken, got %v", err)
	}
}

func TestDeletedPromotionCodeCanBeReissued(t *testing.T) {
	svc, db := setupPromotionAdminServiceTest(t)

	first := models.Promotion{
		Code:         "COMEBACK",
		DiscountType: constants.DiscountTypeFixed,
		Value:        money(2000),
		Scope:        constants.PromotionScopeAll,
		IsActive:     true,
	}
	if err := svc.Create(&first, []uint{7}, nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(first.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var orphans int64
	if err := db.Model(&models.PromotionTarget{}).
		Where("promotion_id = ?", first.ID).Count(&orphans).Error; err != nil {
		t.Fatalf("count targets failed: %v", err)
	}
	if orphans != 0 {
		t.Fatalf("expected targets removed with the promotion, found %d", orphans)
	}

	second := models.Promotion{
		Code:         "COMEBACK",
		DiscountType: constants.DiscountTypePercentage,
		Value:        money(15),
		Scope:        constants.PromotionScopeAll,
		IsActive:     true,
	}
	if err := svc.Create(&second, nil, nil); err != nil {
		t.Fatalf("expected the deleted code to be reissuable, got %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("expected a fresh promotion row, got the old id %d", second.ID)
	}
}
