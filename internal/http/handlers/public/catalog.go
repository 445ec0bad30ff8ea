package public

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solemart/storefront/internal/http/response"
	"github.com/solemart/storefront/internal/repository"
)

// ListProducts returns the public product list.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 32)
	brandID, _ := strconv.ParseUint(c.Query("brand_id"), 10, 32)

	products, total, err := h.CatalogService.ListProducts(repository.ProductListFilter{
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
	response.SuccessWithPage(c, products, buildPagination(page, pageSize, total))
}

// GetProduct returns one product by slug.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.CatalogService.GetProductBySlug(c.Param("slug"))
	if err != nil {
		response.NotFound(c, "product not found")
		return
	}
	response.Success(c, product)
}

// ListCategories returns all categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load categories")
		return
	}
	response.Success(c, categories)
}

// ListBrands returns all brands.
func (h *Handler) ListBrands(c *gin.Context) {
	brands, err := h.CatalogService.ListBrands()
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load brands")
		return
	}
	response.Success(c, brands)
}

// ListSizes returns all sizes.
func (h *Handler) ListSizes(c *gin.Context) {
	sizes, err := h.CatalogService.ListSizes()
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load sizes")
		return
	}
	response.Success(c, sizes)
}

// ListDeliveryZones returns the active delivery zones.
func (h *Handler) ListDeliveryZones(c *gin.Context) {
	zones, err := h.DeliveryService.ListZones(c.Request.Context())
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load delivery zones")
		return
	}
	response.Success(c, zones)
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func buildPagination(page, pageSize int, total int64) response.Pagination {
	totalPage := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPage++
	}
	return response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}
