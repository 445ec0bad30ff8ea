package public

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/solemart/storefront/internal/http/response"
	"github.com/solemart/storefront/internal/models"
)

type cartItemView struct {
	VariantID   uint         `json:"variant_id"`
	ProductID   uint         `json:"product_id"`
	ProductName string       `json:"product_name"`
	SizeLabel   string       `json:"size_label"`
	UnitPrice   models.Money `json:"unit_price"`
	Quantity    int          `json:"quantity"`
	LineTotal   models.Money `json:"line_total"`
	Image       string       `json:"image,omitempty"`
}

type cartView struct {
	SessionKey string         `json:"session_key"`
	Items      []cartItemView `json:"items"`
	Subtotal   models.Money   `json:"subtotal"`
}

func (h *Handler) buildCartView(cart *models.Cart) cartView {
	view := cartView{
		SessionKey: cart.SessionKey,
		Items:      make([]cartItemView, 0, len(cart.Items)),
		Subtotal:   h.CartService.Subtotal(cart),
	}
	for _, item := range cart.Items {
		if item.Variant == nil {
			continue
		}
		entry := cartItemView{
			VariantID: item.VariantID,
			ProductID: item.Variant.ProductID,
			SizeLabel: item.Variant.Size.Label,
			UnitPrice: item.Variant.EffectivePrice(),
			Quantity:  item.Quantity,
		}
		entry.LineTotal = models.NewMoneyFromDecimal(
			entry.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
		if item.Variant.Product != nil {
			entry.ProductName = item.Variant.Product.Name
			if len(item.Variant.Product.Images) > 0 {
				entry.Image = item.Variant.Product.Images[0]
			}
		}
		view.Items = append(view.Items, entry)
	}
	return view
}

// GetCart returns the session cart, issuing a session key when absent.
func (h *Handler) GetCart(c *gin.Context) {
	sessionKey := cartSession(c)
	if sessionKey == "" {
		sessionKey = h.CartService.NewSessionKey()
	}
	cart, err := h.CartService.Get(sessionKey)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, h.buildCartView(cart))
}

type addItemRequest struct {
	VariantID uint `json:"variant_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// AddCartItem adds a variant line to the session cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	sessionKey := cartSession(c)
	if sessionKey == "" {
		sessionKey = h.CartService.NewSessionKey()
	}
	cart, err := h.CartService.AddItem(sessionKey, req.VariantID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, h.buildCartView(cart))
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets an absolute quantity; zero removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	variantID, err := strconv.ParseUint(c.Param("variantID"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid variant id")
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	cart, err := h.CartService.UpdateQuantity(cartSession(c), uint(variantID), req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, h.buildCartView(cart))
}

// RemoveCartItem drops one variant line.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	variantID, err := strconv.ParseUint(c.Param("variantID"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid variant id")
		return
	}
	cart, err := h.CartService.RemoveItem(cartSession(c), uint(variantID))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, h.buildCartView(cart))
}

// ClearCart empties the session cart.
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.CartService.Clear(cartSession(c)); err != nil {
		respondCartError(c, err)
		return
	}
	response.SuccessWithMsg(c, "cart cleared", nil)
}
