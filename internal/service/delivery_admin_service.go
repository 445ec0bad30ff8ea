package service

import (
	"context"
	"strings"

	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

// DeliveryAdminService manages delivery zones from the back office.
type DeliveryAdminService struct {
	zoneRepo    repository.DeliveryZoneRepository
	deliverySvc *DeliveryService
}

// NewDeliveryAdminService creates the delivery admin service.
func NewDeliveryAdminService(zoneRepo repository.DeliveryZoneRepository, deliverySvc *DeliveryService) *DeliveryAdminService {
	return &DeliveryAdminService{
		zoneRepo:    zoneRepo,
		deliverySvc: deliverySvc,
	}
}

// List returns all zones including inactive ones.
func (s *DeliveryAdminService) List() ([]models.DeliveryZone, error) {
	return s.zoneRepo.List(false)
}

// Create inserts a zone.
func (s *DeliveryAdminService) Create(ctx context.Context, zone *models.DeliveryZone) error {
	zone.Slug = strings.ToLower(strings.TrimSpace(zone.Slug))
	existing, err := s.zoneRepo.GetBySlug(zone.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDeliveryZoneTaken
	}
	if err := s.zoneRepo.Create(zone); err != nil {
		return err
	}
	s.deliverySvc.InvalidateZoneCache(ctx)
	return nil
}

// Update saves a zone.
func (s *DeliveryAdminService) Update(ctx context.Context, zone *models.DeliveryZone) error {
	zone.Slug = strings.ToLower(strings.TrimSpace(zone.Slug))
	existing, err := s.zoneRepo.GetBySlug(zone.Slug)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != zone.ID {
		return ErrDeliveryZoneTaken
	}
	if err := s.zoneRepo.Update(zone); err != nil {
		return err
	}
	s.deliverySvc.InvalidateZoneCache(ctx)
	return nil
}

// Delete removes a zone.
func (s *DeliveryAdminService) Delete(ctx context.Context, id uint) error {
	if err := s.zoneRepo.Delete(id); err != nil {
		return err
	}
	s.deliverySvc.InvalidateZoneCache(ctx)
	return nil
}
