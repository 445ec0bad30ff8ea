package service

import (
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

// CatalogService serves the public product browse surface.
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	sizeRepo     repository.SizeRepository
}

// NewCatalogService creates the catalog service.
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
	sizeRepo repository.SizeRepository,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		sizeRepo:     sizeRepo,
	}
}

// ListProducts returns a filtered product page. The public surface only
// sees active products.
func (s *CatalogService) ListProducts(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	active := true
	filter.IsActive = &active
	return s.productRepo.List(filter)
}

// GetProductBySlug fetches one active product.
func (s *CatalogService) GetProductBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// ListBrands returns all brands.
func (s *CatalogService) ListBrands() ([]models.Brand, error) {
	return s.brandRepo.List()
}

// ListSizes returns all sizes.
func (s *CatalogService) ListSizes() ([]models.Size, error) {
	return s.sizeRepo.List()
}
