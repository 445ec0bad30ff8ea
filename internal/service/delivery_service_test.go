package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/solemart/storefront/internal/constants"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

func setupDeliveryServiceTest(t *testing.T) (*DeliveryService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:delivery_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.DeliveryZone{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewDeliveryService(repository.NewDeliveryZoneRepository(db)), db
}

func TestResolveFeeForConfiguredZone(t *testing.T) {
	svc, db := setupDeliveryServiceTest(t)
	zone := models.DeliveryZone{Slug: "lagos-island", Name: "Lagos Island", Fee: money(2500), IsActive: true}
	if err := db.Create(&zone).Error; err != nil {
		t.Fatalf("create zone failed: %v", err)
	}

	quote, err := svc.ResolveFee(zone.ID)
	if err != nil {
		t.Fatalf("resolve fee failed: %v", err)
	}
	if quote.ZoneName != "Lagos Island" || quote.Fee.String() != "2500.00" || quote.RequiresQuote {
		t.Fatalf("unexpected quote: %+v", quote)
	}
}

func TestResolveFeeOtherPseudoZone(t *testing.T) {
	svc, _ := setupDeliveryServiceTest(t)

	quote, err := svc.ResolveFee(0)
	if err != nil {
		t.Fatalf("resolve fee failed: %v", err)
	}
	if quote.ZoneName != constants.DeliveryZoneOther {
		t.Fatalf("expected other pseudo-zone, got %s", quote.ZoneName)
	}
	if !quote.Fee.Decimal.IsZero() || !quote.RequiresQuote {
		t.Fatalf("expected zero fee with manual quote flag, got %+v", quote)
	}
}

func TestResolveFeeUnknownOrInactiveZone(t *testing.T) {
	svc, db := setupDeliveryServiceTest(t)
	inactive := models.DeliveryZone{Slug: "closed", Name: "Closed", Fee: money(1000), IsActive: false}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("create zone failed: %v", err)
	}

	if _, err := svc.ResolveFee(9999); err != ErrDeliveryZoneNotFound {
		t.Fatalf("expected ErrDeliveryZoneNotFound for unknown zone, got %v", err)
	}
	if _, err := svc.ResolveFee(inactive.ID); err != ErrDeliveryZoneNotFound {
		t.Fatalf("expected ErrDeliveryZoneNotFound for inactive zone, got %v", err)
	}
}

func TestListZonesReturnsOnlyActiveOrdered(t *testing.T) {
	svc, db := setupDeliveryServiceTest(t)
	zones := []models.DeliveryZone{
		{Slug: "b-zone", Name: "B", Fee: money(3000), SortOrder: 50, IsActive: true},
		{Slug: "a-zone", Name: "A", Fee: money(2000), SortOrder: 100, IsActive: true},
		{Slug: "hidden", Name: "Hidden", Fee: money(9000), SortOrder: 200, IsActive: false},
	}
	for i := range zones {
		if err := db.Create(&zones[i]).Error; err != nil {
			t.Fatalf("create zone failed: %v", err)
		}
	}

	active, err := svc.ListZones(context.Background())
	if err != nil {
		t.Fatalf("list zones failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active zones, got %d", len(active))
	}
	if active[0].Slug != "a-zone" || active[1].Slug != "b-zone" {
		t.Fatalf("expected sort_order desc ordering, got %s then %s", active[0].Slug, active[1].Slug)
	}
}
