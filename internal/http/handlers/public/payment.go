package public

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/solemart/storefront/internal/http/response"
	"github.com/solemart/storefront/internal/logger"
)

// PaystackCallback handles the browser redirect after a hosted checkout.
// The reference is re-verified with the gateway before settling.
func (h *Handler) PaystackCallback(c *gin.Context) {
	reference := strings.TrimSpace(c.Query("reference"))
	if reference == "" {
		reference = strings.TrimSpace(c.Query("trxref"))
	}
	if reference == "" {
		response.BadRequest(c, "missing payment reference")
		return
	}
	order, err := h.PaymentService.VerifyAndSettle(c.Request.Context(), reference)
	if err != nil {
		respondPaymentError(c, err)
		return
	}
	response.Success(c, order)
}

// PaystackWebhook handles gateway webhooks. The signature header is
// verified against the raw body before any processing.
func (h *Handler) PaystackWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		response.BadRequest(c, "invalid webhook body")
		return
	}
	signature := c.GetHeader("x-paystack-signature")
	if err := h.PaymentService.HandleWebhook(c.Request.Context(), body, signature); err != nil {
		logger.Warnw("paystack_webhook_rejected", "error", err)
		respondPaymentError(c, err)
		return
	}
	response.Success(c, nil)
}

// SupportContact returns the WhatsApp contact link.
func (h *Handler) SupportContact(c *gin.Context) {
	response.Success(c, gin.H{"whatsapp_link": h.SupportService.ContactLink()})
}
