package public

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/solemart/storefront/internal/http/response"
	"github.com/solemart/storefront/internal/service"
)

// mappedHandlerError maps a service error to an envelope code and message.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.code, rule.msg)
			return
		}
	}
	response.Error(c, fallbackCode, fallbackMsg)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartNotFound, code: response.CodeNotFound, msg: "cart not found"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, msg: "quantity must be positive"},
	{target: service.ErrVariantNotFound, code: response.CodeNotFound, msg: "product variant not found"},
	{target: service.ErrVariantUnavailable, code: response.CodeBadRequest, msg: "product variant is unavailable"},
}

var promotionErrorRules = []mappedHandlerError{
	{target: service.ErrPromotionNotFound, code: response.CodeBadRequest, msg: "invalid or expired promotion code"},
	{target: service.ErrPromotionProductScope, code: response.CodeBadRequest, msg: "promotion applies to specific products only"},
	{target: service.ErrPromotionCategoryScope, code: response.CodeBadRequest, msg: "promotion applies to specific categories only"},
	{target: service.ErrPromotionMinimumNotMet, code: response.CodeBadRequest, msg: "cart subtotal below promotion minimum"},
}

var orderCreateErrorRules = append([]mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrOrderMissingCustomer, code: response.CodeBadRequest, msg: "customer name and phone are required"},
	{target: service.ErrDeliveryZoneNotFound, code: response.CodeBadRequest, msg: "delivery zone not found"},
	{target: service.ErrVariantNotFound, code: response.CodeBadRequest, msg: "a cart item is no longer available"},
	{target: service.ErrVariantUnavailable, code: response.CodeBadRequest, msg: "a cart item is no longer available"},
}, promotionErrorRules...)

var paymentErrorRules = []mappedHandlerError{
	{target: service.ErrPaymentDisabled, code: response.CodeBadRequest, msg: "online payment is not available"},
	{target: service.ErrPaymentInitFailed, code: response.CodeInternal, msg: "payment initialization failed"},
	{target: service.ErrPaymentVerifyFailed, code: response.CodeBadRequest, msg: "payment verification failed"},
	{target: service.ErrPaymentNotSuccessful, code: response.CodeBadRequest, msg: "payment was not successful"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrOrderAlreadyPaid, code: response.CodeBadRequest, msg: "order already paid"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart operation failed")
}

func respondPromotionError(c *gin.Context, err error) {
	respondWithMappedError(c, err, promotionErrorRules, response.CodeInternal, "promotion validation failed")
}

func respondOrderCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderCreateErrorRules, response.CodeInternal, "order creation failed")
}

func respondPaymentError(c *gin.Context, err error) {
	respondWithMappedError(c, err, paymentErrorRules, response.CodeInternal, "payment processing failed")
}
