package service

import (
	"context"
	"time"

	"github.com/solemart/storefront/internal/cache"
	"github.com/solemart/storefront/internal/constants"
	"github.com/solemart/storefront/internal/logger"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

const (
	deliveryZonesCacheKey = "delivery:zones:active"
	deliveryZonesCacheTTL = 5 * time.Minute
)

// DeliveryQuote is the resolved delivery cost for a zone choice.
type DeliveryQuote struct {
	ZoneName      string       `json:"zone_name"`
	Fee           models.Money `json:"fee"`
	RequiresQuote bool         `json:"requires_quote"`
}

// DeliveryService resolves delivery fees for checkout.
type DeliveryService struct {
	zoneRepo repository.DeliveryZoneRepository
}

// NewDeliveryService creates the delivery service.
func NewDeliveryService(zoneRepo repository.DeliveryZoneRepository) *DeliveryService {
	return &DeliveryService{zoneRepo: zoneRepo}
}

// ListZones returns the active zones, cached briefly.
func (s *DeliveryService) ListZones(ctx context.Context) ([]models.DeliveryZone, error) {
	var cached []models.DeliveryZone
	hit, err := cache.GetJSON(ctx, deliveryZonesCacheKey, &cached)
	if err != nil {
		logger.Warnw("delivery_zones_cache_read_failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	zones, err := s.zoneRepo.List(true)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, deliveryZonesCacheKey, zones, deliveryZonesCacheTTL); err != nil {
		logger.Warnw("delivery_zones_cache_write_failed", "error", err)
	}
	return zones, nil
}

// InvalidateZoneCache drops the cached zone list after an admin edit.
func (s *DeliveryService) InvalidateZoneCache(ctx context.Context) {
	if err := cache.Del(ctx, deliveryZonesCacheKey); err != nil {
		logger.Warnw("delivery_zones_cache_del_failed", "error", err)
	}
}

// ResolveFee resolves the flat fee for a zone. Zone id 0 is the "other"
// pseudo-zone: no fee yet, the store quotes delivery manually.
func (s *DeliveryService) ResolveFee(zoneID uint) (DeliveryQuote, error) {
	if zoneID == 0 {
		return DeliveryQuote{
			ZoneName:      constants.DeliveryZoneOther,
			Fee:           models.Money{},
			RequiresQuote: true,
		}, nil
	}
	zone, err := s.zoneRepo.GetByID(zoneID)
	if err != nil {
		return DeliveryQuote{}, err
	}
	if zone == nil || !zone.IsActive {
		return DeliveryQuote{}, ErrDeliveryZoneNotFound
	}
	return DeliveryQuote{ZoneName: zone.Name, Fee: zone.Fee}, nil
}
