package service

import (
	"strings"

	"github.com/solemart/storefront/internal/constants"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

// PromotionAdminService manages promotions from the back office.
type PromotionAdminService struct {
	promoRepo repository.PromotionRepository
}

// NewPromotionAdminService creates the promotion admin service.
func NewPromotionAdminService(promoRepo repository.PromotionRepository) *PromotionAdminService {
	return &PromotionAdminService{promoRepo: promoRepo}
}

// List returns a filtered promotion page.
func (s *PromotionAdminService) List(filter repository.PromotionListFilter) ([]models.Promotion, int64, error) {
	return s.promoRepo.List(filter)
}

// Get fetches one promotion.
func (s *PromotionAdminService) Get(id uint) (*models.Promotion, error) {
	promotion, err := s.promoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, ErrPromotionNotFound
	}
	return promotion, nil
}

// Create inserts a promotion with its targets. Codes are stored uppercase.
func (s *PromotionAdminService) Create(promotion *models.Promotion, productIDs, categoryIDs []uint) error {
	promotion.Code = strings.ToUpper(strings.TrimSpace(promotion.Code))
	existing, err := s.promoRepo.GetByCode(promotion.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrPromotionCodeTaken
	}
	promotion.Targets = buildTargets(productIDs, categoryIDs)
	return s.promoRepo.Create(promotion)
}

// Update saves a promotion and replaces its targets.
func (s *PromotionAdminService) Update(promotion *models.Promotion, productIDs, categoryIDs []uint) error {
	promotion.Code = strings.ToUpper(strings.TrimSpace(promotion.Code))
	existing, err := s.promoRepo.GetByCode(promotion.Code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != promotion.ID {
		return ErrPromotionCodeTaken
	}
	if err := s.promoRepo.Update(promotion); err != nil {
		return err
	}
	return s.promoRepo.ReplaceTargets(promotion.ID, buildTargets(productIDs, categoryIDs))
}

// Delete removes a promotion.
func (s *PromotionAdminService) Delete(id uint) error {
	return s.promoRepo.Delete(id)
}

func buildTargets(productIDs, categoryIDs []uint) []models.PromotionTarget {
	targets := make([]models.PromotionTarget, 0, len(productIDs)+len(categoryIDs))
	for _, id := range productIDs {
		targets = append(targets, models.PromotionTarget{
			TargetType: constants.PromotionTargetProduct,
			TargetID:   id,
		})
	}
	for _, id := range categoryIDs {
		targets = append(targets, models.PromotionTarget{
			TargetType: constants.PromotionTargetCategory,
			TargetID:   id,
		})
	}
	return targets
}
