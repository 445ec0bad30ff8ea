package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/solemart/storefront/internal/models"
)

// DeliveryZoneRepository is the delivery zone data access interface.
type DeliveryZoneRepository interface {
	GetByID(id uint) (*models.DeliveryZone, error)
	GetBySlug(slug string) (*models.DeliveryZone, error)
	List(onlyActive bool) ([]models.DeliveryZone, error)
	Create(zone *models.DeliveryZone) error
	Update(zone *models.DeliveryZone) error
	Delete(id uint) error
}

// GormDeliveryZoneRepository is the GORM implementation.
type GormDeliveryZoneRepository struct {
	db *gorm.DB
}

// NewDeliveryZoneRepository creates the delivery zone repository.
func NewDeliveryZoneRepository(db *gorm.DB) *GormDeliveryZoneRepository {
	return &GormDeliveryZoneRepository{db: db}
}

// GetByID fetches a zone by ID.
func (r *GormDeliveryZoneRepository) GetByID(id uint) (*models.DeliveryZone, error) {
	var zone models.DeliveryZone
	if err := r.db.First(&zone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &zone, nil
}

// GetBySlug fetches a zone by slug.
func (r *GormDeliveryZoneRepository) GetBySlug(slug string) (*models.DeliveryZone, error) {
	var zone models.DeliveryZone
	if err := r.db.Where("slug = ?", slug).First(&zone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &zone, nil
}

// List fetches zones ordered for display.
func (r *GormDeliveryZoneRepository) List(onlyActive bool) ([]models.DeliveryZone, error) {
	zones := make([]models.DeliveryZone, 0)
	query := r.db.Order("sort_order DESC, id ASC")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

// Create inserts a zone.
func (r *GormDeliveryZoneRepository) Create(zone *models.DeliveryZone) error {
	return r.db.Create(zone).Error
}

// Update saves a zone.
func (r *GormDeliveryZoneRepository) Update(zone *models.DeliveryZone) error {
	return r.db.Save(zone).Error
}

// Delete soft-deletes a zone.
func (r *GormDeliveryZoneRepository) Delete(id uint) error {
	return r.db.Delete(&models.DeliveryZone{}, id).Error
}
