package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/solemart/storefront/internal/http/response"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

type productRequest struct {
	BrandID     uint     `json:"brand_id" binding:"required"`
	CategoryID  uint     `json:"category_id" binding:"required"`
	Slug        string   `json:"slug" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	IsActive    *bool    `json:"is_active"`
	SortOrder   int      `json:"sort_order"`
}

func (r productRequest) toModel() *models.Product {
	product := &models.Product{
		BrandID:     r.BrandID,
		CategoryID:  r.CategoryID,
		Slug:        r.Slug,
		Name:        r.Name,
		Description: r.Description,
		Images:      models.StringArray(r.Images),
		IsActive:    true,
		SortOrder:   r.SortOrder,
	}
	if r.IsActive != nil {
		product.IsActive = *r.IsActive
	}
	return product
}

// ListProducts returns the admin product list, inactive included.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 32)
	brandID, _ := strconv.ParseUint(c.Query("brand_id"), 10, 32)

	products, total, err := h.ProductRepo.List(repository.ProductListFilter{
		CategoryID: uint(categoryID),
		BrandID:    uint(brandID),
		Keyword:    c.Query("keyword"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load products")
		return
	}
	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// CreateProduct inserts a product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product := req.toModel()
	if err := h.ProductRepo.Create(product); err != nil {
		response.Error(c, response.CodeInternal, "failed to create product")
		return
	}
	response.Success(c, product)
}

// UpdateProduct saves a product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}
	existing, err := h.ProductRepo.GetByID(uint(id))
	if err != nil || existing == nil {
		response.NotFound(c, "product not found")
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product := req.toModel()
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if err := h.ProductRepo.Update(product); err != nil {
		response.Error(c, response.CodeInternal, "failed to update product")
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a product.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}
	if err := h.ProductRepo.Delete(uint(id)); err != nil {
		response.Error(c, response.CodeInternal, "failed to delete product")
		return
	}
	response.SuccessWithMsg(c, "product deleted", nil)
}

type variantRequest struct {
	ProductID  uint   `json:"product_id" binding:"required"`
	SizeID     uint   `json:"size_id" binding:"required"`
	Price      string `json:"price" binding:"required"`
	PromoPrice string `json:"promo_price"`
	InStock    *bool  `json:"in_stock"`
	IsActive   *bool  `json:"is_active"`
}

func (r variantRequest) toModel() (*models.ProductVariant, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil || price.IsNegative() {
		return nil, errors.New("invalid price")
	}
	variant := &models.ProductVariant{
		ProductID: r.ProductID,
		SizeID:    r.SizeID,
		Price:     models.NewMoneyFromDecimal(price),
		InStock:   true,
		IsActive:  true,
	}
	if r.PromoPrice != "" {
		promo, err := decimal.NewFromString(r.PromoPrice)
		if err != nil || promo.IsNegative() || promo.GreaterThan(price) {
			return nil, errors.New("invalid promo price")
		}
		money := models.NewMoneyFromDecimal(promo)
		variant.PromoPrice = &money
	}
	if r.InStock != nil {
		variant.InStock = *r.InStock
	}
	if r.IsActive != nil {
		variant.IsActive = *r.IsActive
	}
	return variant, nil
}

// CreateVariant inserts a product variant.
func (h *Handler) CreateVariant(c *gin.Context) {
	var req variantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	variant, err := req.toModel()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.VariantRepo.Create(variant); err != nil {
		response.Error(c, response.CodeInternal, "failed to create variant")
		return
	}
	response.Success(c, variant)
}

// UpdateVariant saves a product variant.
func (h *Handler) UpdateVariant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid variant id")
		return
	}
	existing, err := h.VariantRepo.GetByID(uint(id))
	if err != nil || existing == nil {
		response.NotFound(c, "variant not found")
		return
	}
	var req variantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	variant, err := req.toModel()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	variant.ID = existing.ID
	variant.CreatedAt = existing.CreatedAt
	if err := h.VariantRepo.Update(variant); err != nil {
		response.Error(c, response.CodeInternal, "failed to update variant")
		return
	}
	response.Success(c, variant)
}

// DeleteVariant removes a product variant.
func (h *Handler) DeleteVariant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid variant id")
		return
	}
	if err := h.VariantRepo.Delete(uint(id)); err != nil {
		response.Error(c, response.CodeInternal, "failed to delete variant")
		return
	}
	response.SuccessWithMsg(c, "variant deleted", nil)
}
