package admin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solemart/storefront/internal/http/response"
	"github.com/solemart/storefront/internal/models"
)

type brandRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Logo      string `json:"logo"`
	SortOrder int    `json:"sort_order"`
}

// CreateBrand inserts a brand.
func (h *Handler) CreateBrand(c *gin.Context) {
	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	brand := &models.Brand{Slug: req.Slug, Name: req.Name, Logo: req.Logo, SortOrder: req.SortOrder}
	if err := h.BrandRepo.Create(brand); err != nil {
		response.Error(c, response.CodeInternal, "failed to create brand")
		return
	}
	response.Success(c, brand)
}

// DeleteBrand removes a brand.
func (h *Handler) DeleteBrand(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid brand id")
		return
	}
	if err := h.BrandRepo.Delete(uint(id)); err != nil {
		response.Error(c, response.CodeInternal, "failed to delete brand")
		return
	}
	response.SuccessWithMsg(c, "brand deleted", nil)
}

type categoryRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// CreateCategory inserts a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	category := &models.Category{Slug: req.Slug, Name: req.Name, SortOrder: req.SortOrder}
	if err := h.CategoryRepo.Create(category); err != nil {
		response.Error(c, response.CodeInternal, "failed to create category")
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes a category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}
	if err := h.CategoryRepo.Delete(uint(id)); err != nil {
		response.Error(c, response.CodeInternal, "failed to delete category")
		return
	}
	response.SuccessWithMsg(c, "category deleted", nil)
}

type sizeRequest struct {
	Label     string `json:"label" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// CreateSize inserts a size.
func (h *Handler) CreateSize(c *gin.Context) {
	var req sizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	size := &models.Size{Label: req.Label, SortOrder: req.SortOrder}
	if err := h.SizeRepo.Create(size); err != nil {
		response.Error(c, response.CodeInternal, "failed to create size")
		return
	}
	response.Success(c, size)
}

// DeleteSize removes a size.
func (h *Handler) DeleteSize(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid size id")
		return
	}
	if err := h.SizeRepo.Delete(uint(id)); err != nil {
		response.Error(c, response.CodeInternal, "failed to delete size")
		return
	}
	response.SuccessWithMsg(c, "size deleted", nil)
}
