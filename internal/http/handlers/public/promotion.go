package public

import (
	"github.com/gin-gonic/gin"

	"github.com/solemart/storefront/internal/http/response"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/service"
)

type validatePromotionRequest struct {
	Code string `json:"code" binding:"required"`
}

type validatePromotionView struct {
	Code     string       `json:"code"`
	Discount models.Money `json:"discount"`
	Subtotal models.Money `json:"subtotal"`
	Total    models.Money `json:"total"`
}

// ValidatePromotion checks a code against the session cart and previews
// the discount.
func (h *Handler) ValidatePromotion(c *gin.Context) {
	var req validatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	cart, err := h.CartService.Get(cartSession(c))
	if err != nil {
		respondCartError(c, err)
		return
	}
	subtotal := h.CartService.Subtotal(cart)

	resolved, err := h.PromotionService.Resolve(req.Code, subtotal, scopeItems(cart))
	if err != nil {
		respondPromotionError(c, err)
		return
	}

	response.Success(c, validatePromotionView{
		Code:     resolved.Promotion.Code,
		Discount: resolved.Discount,
		Subtotal: subtotal,
		Total:    service.Total(subtotal, resolved.Discount, models.Money{}),
	})
}

func scopeItems(cart *models.Cart) []service.ScopeItem {
	items := make([]service.ScopeItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		if line.Variant == nil {
			continue
		}
		item := service.ScopeItem{ProductID: line.Variant.ProductID}
		if line.Variant.Product != nil {
			item.CategoryID = line.Variant.Product.CategoryID
		}
		items = append(items, item)
	}
	return items
}
