package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/solemart/storefront/internal/models"
)

// ProductRepository is the product data access interface.
type ProductRepository interface {
	GetByID(id uint) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	List(filter ProductListFilter) ([]models.Product, int64, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}

// ProductListFilter filters the product list.
type ProductListFilter struct {
	CategoryID uint
	BrandID    uint
	Keyword    string
	IsActive   *bool
	Page       int
	PageSize   int
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates the product repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) withAssociations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Brand").
		Preload("Category").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_variants.size_id ASC, product_variants.id ASC")
		}).
		Preload("Variants.Size")
}

// GetByID fetches a product with its variants.
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.withAssociations(r.db).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlug fetches a product by slug.
func (r *GormProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.withAssociations(r.db).Where("slug = ?", slug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// List fetches a filtered product page.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product
	query := r.db.Model(&models.Product{})

	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.BrandID > 0 {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if filter.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+filter.Keyword+"%")
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := r.withAssociations(query).Order("sort_order DESC, id ASC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Create inserts a product.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update saves a product.
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete soft-deletes a product.
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// VariantRepository is the product variant data access interface.
type VariantRepository interface {
	GetByID(id uint) (*models.ProductVariant, error)
	ListByIDs(ids []uint) ([]models.ProductVariant, error)
	Create(variant *models.ProductVariant) error
	Update(variant *models.ProductVariant) error
	Delete(id uint) error
}

// GormVariantRepository is the GORM implementation.
type GormVariantRepository struct {
	db *gorm.DB
}

// NewVariantRepository creates the variant repository.
func NewVariantRepository(db *gorm.DB) *GormVariantRepository {
	return &GormVariantRepository{db: db}
}

// GetByID fetches a variant with its product and size.
func (r *GormVariantRepository) GetByID(id uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.db.Preload("Product").Preload("Size").First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// ListByIDs fetches variants in bulk with products and sizes.
func (r *GormVariantRepository) ListByIDs(ids []uint) ([]models.ProductVariant, error) {
	if len(ids) == 0 {
		return []models.ProductVariant{}, nil
	}
	var variants []models.ProductVariant
	if err := r.db.Preload("Product").Preload("Size").Where("id IN ?", ids).Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// Create inserts a variant.
func (r *GormVariantRepository) Create(variant *models.ProductVariant) error {
	return r.db.Create(variant).Error
}

// Update saves a variant.
func (r *GormVariantRepository) Update(variant *models.ProductVariant) error {
	return r.db.Save(variant).Error
}

// Delete soft-deletes a variant.
func (r *GormVariantRepository) Delete(id uint) error {
	return r.db.Delete(&models.ProductVariant{}, id).Error
}

// CategoryRepository is the category data access interface.
type CategoryRepository interface {
	GetByID(id uint) (*models.Category, error)
	List() ([]models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint) error
}

// GormCategoryRepository is the GORM implementation.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates the category repository.
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// GetByID fetches a category by ID.
func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// List fetches all categories ordered for display.
func (r *GormCategoryRepository) List() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := r.db.Order("sort_order DESC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Create inserts a category.
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update saves a category.
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete soft-deletes a category.
func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// BrandRepository is the brand data access interface.
type BrandRepository interface {
	GetByID(id uint) (*models.Brand, error)
	List() ([]models.Brand, error)
	Create(brand *models.Brand) error
	Update(brand *models.Brand) error
	Delete(id uint) error
}

// GormBrandRepository is the GORM implementation.
type GormBrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates the brand repository.
func NewBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

// GetByID fetches a brand by ID.
func (r *GormBrandRepository) GetByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

// List fetches all brands ordered for display.
func (r *GormBrandRepository) List() ([]models.Brand, error) {
	brands := make([]models.Brand, 0)
	if err := r.db.Order("sort_order DESC, id ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// Create inserts a brand.
func (r *GormBrandRepository) Create(brand *models.Brand) error {
	return r.db.Create(brand).Error
}

// Update saves a brand.
func (r *GormBrandRepository) Update(brand *models.Brand) error {
	return r.db.Save(brand).Error
}

// Delete soft-deletes a brand.
func (r *GormBrandRepository) Delete(id uint) error {
	return r.db.Delete(&models.Brand{}, id).Error
}

// SizeRepository is the size data access interface.
type SizeRepository interface {
	GetByID(id uint) (*models.Size, error)
	List() ([]models.Size, error)
	Create(size *models.Size) error
	Update(size *models.Size) error
	Delete(id uint) error
}

// GormSizeRepository is the GORM implementation.
type GormSizeRepository struct {
	db *gorm.DB
}

// NewSizeRepository creates the size repository.
func NewSizeRepository(db *gorm.DB) *GormSizeRepository {
	return &GormSizeRepository{db: db}
}

// GetByID fetches a size by ID.
func (r *GormSizeRepository) GetByID(id uint) (*models.Size, error) {
	var size models.Size
	if err := r.db.First(&size, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &size, nil
}

// List fetches all sizes ordered for display.
func (r *GormSizeRepository) List() ([]models.Size, error) {
	sizes := make([]models.Size, 0)
	if err := r.db.Order("sort_order DESC, id ASC").Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

// Create inserts a size.
func (r *GormSizeRepository) Create(size *models.Size) error {
	return r.db.Create(size).Error
}

// Update saves a size.
func (r *GormSizeRepository) Update(size *models.Size) error {
	return r.db.Save(size).Error
}

// Delete soft-deletes a size.
func (r *GormSizeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Size{}, id).Error
}
