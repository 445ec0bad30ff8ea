package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// response codes.
var (
	// Cart
	ErrCartNotFound       = errors.New("cart not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrVariantNotFound    = errors.New("product variant not found")
	ErrVariantUnavailable = errors.New("product variant is unavailable")

	// Promotion
	ErrPromotionNotFound      = errors.New("promotion not found")
	ErrPromotionProductScope  = errors.New("promotion does not apply to any product in the cart")
	ErrPromotionCategoryScope = errors.New("promotion does not apply to any category in the cart")
	ErrPromotionMinimumNotMet = errors.New("cart subtotal below promotion minimum")
	ErrPromotionCodeTaken     = errors.New("promotion code already exists")

	// Delivery
	ErrDeliveryZoneNotFound = errors.New("delivery zone not found")
	ErrDeliveryZoneTaken    = errors.New("delivery zone slug already exists")

	// Order
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderStatusInvalid   = errors.New("order status transition not allowed")
	ErrOrderAlreadyPaid     = errors.New("order already paid")
	ErrOrderCreateFailed    = errors.New("order creation failed")
	ErrOrderMissingCustomer = errors.New("customer name and phone are required")

	// Payment
	ErrPaymentInitFailed    = errors.New("payment initialization failed")
	ErrPaymentVerifyFailed  = errors.New("payment verification failed")
	ErrPaymentNotSuccessful = errors.New("payment not successful")
	ErrPaymentDisabled      = errors.New("payment gateway is disabled")

	// Auth
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Catalog
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)
