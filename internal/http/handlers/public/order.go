package public

import (
	"github.com/gin-gonic/gin"

	"github.com/solemart/storefront/internal/constants"
	"github.com/solemart/storefront/internal/http/response"
	"github.com/solemart/storefront/internal/logger"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/queue"
	"github.com/solemart/storefront/internal/service"
)

type createOrderRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	ZoneID        uint   `json:"zone_id"`
	Address       string `json:"address"`
	PromoCode     string `json:"promo_code"`
	PaymentMethod string `json:"payment_method"`
	Note          string `json:"note"`
}

type createOrderView struct {
	Order        *models.Order `json:"order"`
	PaymentURL   string        `json:"payment_url,omitempty"`
	WhatsappLink string        `json:"whatsapp_link,omitempty"`
}

// CreateOrder checks out the session cart.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		SessionKey:    cartSession(c),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ZoneID:        req.ZoneID,
		Address:       req.Address,
		PromoCode:     req.PromoCode,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
		ClientIP:      c.ClientIP(),
	})
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}

	if err := h.QueueClient.EnqueueOrderConfirmation(queue.OrderConfirmationPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("order_confirmation_enqueue_failed", "order_no", order.OrderNo, "error", err)
	}

	view := createOrderView{Order: order}
	switch order.PaymentMethod {
	case constants.PaymentMethodPaystack:
		url, err := h.PaymentService.InitializeForOrder(c.Request.Context(), order)
		if err != nil {
			// The order exists; surface it with the hand-off fallback.
			logger.Warnw("order_payment_init_failed", "order_no", order.OrderNo, "error", err)
			view.WhatsappLink = h.SupportService.OrderLink(order)
		} else {
			view.PaymentURL = url
		}
	default:
		view.WhatsappLink = h.SupportService.OrderLink(order)
	}
	response.Success(c, view)
}

// GetOrder returns an order by order number.
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.OrderService.GetByOrderNo(c.Param("orderNo"))
	if err != nil {
		response.NotFound(c, "order not found")
		return
	}
	response.Success(c, order)
}
