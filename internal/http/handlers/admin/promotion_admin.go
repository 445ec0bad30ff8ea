package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/solemart/storefront/internal/constants"
	"github.com/solemart/storefront/internal/http/response"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
	"github.com/solemart/storefront/internal/service"
)

type promotionRequest struct {
	Code         string `json:"code" binding:"required"`
	Description  string `json:"description"`
	DiscountType string `json:"discount_type" binding:"required"`
	Value        string `json:"value" binding:"required"`
	MinSubtotal  string `json:"min_subtotal"`
	Scope        string `json:"scope"`
	StartAt      string `json:"start_at"`
	EndAt        string `json:"end_at"`
	IsActive     *bool  `json:"is_active"`
	ProductIDs   []uint `json:"product_ids"`
	CategoryIDs  []uint `json:"category_ids"`
}

func (r promotionRequest) toModel() (*models.Promotion, error) {
	if r.DiscountType != constants.DiscountTypePercentage && r.DiscountType != constants.DiscountTypeFixed {
		return nil, errors.New("invalid discount type")
	}
	value, err := decimal.NewFromString(r.Value)
	if err != nil || value.IsNegative() {
		return nil, errors.New("invalid discount value")
	}
	if r.DiscountType == constants.DiscountTypePercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return nil, errors.New("percentage discount exceeds 100")
	}

	promotion := &models.Promotion{
		Code:         r.Code,
		Description:  r.Description,
		DiscountType: r.DiscountType,
		Value:        models.NewMoneyFromDecimal(value),
		Scope:        r.Scope,
		IsActive:     true,
	}
	if promotion.Scope == "" {
		promotion.Scope = constants.PromotionScopeAll
	}
	if r.IsActive != nil {
		promotion.IsActive = *r.IsActive
	}

	if r.MinSubtotal != "" {
		min, err := decimal.NewFromString(r.MinSubtotal)
		if err != nil || min.IsNegative() {
			return nil, errors.New("invalid minimum subtotal")
		}
		money := models.NewMoneyFromDecimal(min)
		promotion.MinSubtotal = &money
	}
	if r.StartAt != "" {
		t, err := time.Parse(time.RFC3339, r.StartAt)
		if err != nil {
			return nil, errors.New("invalid start_at")
		}
		promotion.StartAt = &t
	}
	if r.EndAt != "" {
		t, err := time.Parse(time.RFC3339, r.EndAt)
		if err != nil {
			return nil, errors.New("invalid end_at")
		}
		promotion.EndAt = &t
	}
	return promotion, nil
}

// ListPromotions returns a filtered promotion page.
func (h *Handler) ListPromotions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	promotions, total, err := h.PromotionAdminService.List(repository.PromotionListFilter{
		Code:     c.Query("code"),
		Scope:    c.Query("scope"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load promotions")
		return
	}
	response.SuccessWithPage(c, promotions, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetPromotion returns one promotion.
func (h *Handler) GetPromotion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid promotion id")
		return
	}
	promotion, err := h.PromotionAdminService.Get(uint(id))
	if err != nil {
		response.NotFound(c, "promotion not found")
		return
	}
	response.Success(c, promotion)
}

// CreatePromotion inserts a promotion.
func (h *Handler) CreatePromotion(c *gin.Context) {
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	promotion, err := req.toModel()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.PromotionAdminService.Create(promotion, req.ProductIDs, req.CategoryIDs); err != nil {
		if errors.Is(err, service.ErrPromotionCodeTaken) {
			response.BadRequest(c, "promotion code already exists")
			return
		}
		response.Error(c, response.CodeInternal, "failed to create promotion")
		return
	}
	response.Success(c, promotion)
}

// UpdatePromotion saves a promotion.
func (h *Handler) UpdatePromotion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid promotion id")
		return
	}
	existing, err := h.PromotionAdminService.Get(uint(id))
	if err != nil {
		response.NotFound(c, "promotion not found")
		return
	}

	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	promotion, err := req.toModel()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	promotion.ID = existing.ID
	promotion.CreatedAt = existing.CreatedAt

	if err := h.PromotionAdminService.Update(promotion, req.ProductIDs, req.CategoryIDs); err != nil {
		if errors.Is(err, service.ErrPromotionCodeTaken) {
			response.BadRequest(c, "promotion code already exists")
			return
		}
		response.Error(c, response.CodeInternal, "failed to update promotion")
		return
	}
	response.Success(c, promotion)
}

// DeletePromotion removes a promotion.
func (h *Handler) DeletePromotion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid promotion id")
		return
	}
	if err := h.PromotionAdminService.Delete(uint(id)); err != nil {
		response.Error(c, response.CodeInternal, "failed to delete promotion")
		return
	}
	response.SuccessWithMsg(c, "promotion deleted", nil)
}
