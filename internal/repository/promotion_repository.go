package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/solemart/storefront/internal/models"
)

// PromotionRepository is the promotion data access interface.
type PromotionRepository interface {
	GetByID(id uint) (*models.Promotion, error)
	GetByCode(code string) (*models.Promotion, error)
	List(filter PromotionListFilter) ([]models.Promotion, int64, error)
	Create(promotion *models.Promotion) error
	Update(promotion *models.Promotion) error
	Delete(id uint) error
	ReplaceTargets(promotionID uint, targets []models.PromotionTarget) error
	WithTx(tx *gorm.DB) *GormPromotionRepository
}

// PromotionListFilter filters the promotion list.
type PromotionListFilter struct {
	Code     string
	Scope    string
	IsActive *bool
	Page     int
	PageSize int
}

// GormPromotionRepository is the GORM implementation.
type GormPromotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates the promotion repository.
func NewPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormPromotionRepository) WithTx(tx *gorm.DB) *GormPromotionRepository {
	if tx == nil {
		return r
	}
	return &GormPromotionRepository{db: tx}
}

// GetByID fetches a promotion with its targets.
func (r *GormPromotionRepository) GetByID(id uint) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := r.db.Preload("Targets").First(&promotion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promotion, nil
}

// GetByCode fetches a promotion by code with its targets.
func (r *GormPromotionRepository) GetByCode(code string) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := r.db.Preload("Targets").Where("code = ?", code).First(&promotion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promotion, nil
}

// List fetches a filtered promotion page.
func (r *GormPromotionRepository) List(filter PromotionListFilter) ([]models.Promotion, int64, error) {
	var promotions []models.Promotion
	query := r.db.Model(&models.Promotion{})

	if filter.Code != "" {
		query = query.Where("code = ?", filter.Code)
	}
	if filter.Scope != "" {
		query = query.Where("scope = ?", filter.Scope)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("Targets").Order("id desc").Find(&promotions).Error; err != nil {
		return nil, 0, err
	}
	return promotions, total, nil
}

// Create inserts a promotion with its targets.
func (r *GormPromotionRepository) Create(promotion *models.Promotion) error {
	return r.db.Create(promotion).Error
}

// Update saves a promotion.
func (r *GormPromotionRepository) Update(promotion *models.Promotion) error {
	return r.db.Omit("Targets").Save(promotion).Error
}

// Delete removes a promotion and its targets. The delete is unscoped so
// the code leaves the unique index and can be issued again later.
func (r *GormPromotionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("promotion_id = ?", id).Delete(&models.PromotionTarget{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Promotion{}, id).Error
	})
}

// ReplaceTargets swaps the full target set of a promotion.
func (r *GormPromotionRepository) ReplaceTargets(promotionID uint, targets []models.PromotionTarget) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("promotion_id = ?", promotionID).Delete(&models.PromotionTarget{}).Error; err != nil {
			return err
		}
		if len(targets) == 0 {
			return nil
		}
		for i := range targets {
			targets[i].PromotionID = promotionID
		}
		return tx.Create(&targets).Error
	})
}
