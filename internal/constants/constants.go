package constants

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusPaid       = "paid"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment method constants
const (
	PaymentMethodPaystack = "paystack"
	PaymentMethodWhatsapp = "whatsapp"
)

// Discount type constants
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Promotion scope constants
const (
	PromotionScopeAll        = "all"
	PromotionScopeProducts   = "products"
	PromotionScopeCategories = "categories"
)

// Promotion target type constants
const (
	PromotionTargetProduct  = "product"
	PromotionTargetCategory = "category"
)

// Delivery zone constants
const (
	// DeliveryZoneOther marks addresses outside the configured zones;
	// the fee is zero and the order requires a manual quote.
	DeliveryZoneOther = "other"
)

// Queue constants
const (
	QueueDefault          = "default"
	TaskOrderConfirmation = "order:confirmation"
	TaskOrderStatusNotify = "order:status_notify"
	TaskPaymentReconcile  = "payment:reconcile"
)

// Cache constants
const (
	RedisPrefixDefault = "sm"
)

// Currency constants
const (
	SiteCurrencyDefault = "NGN"
)

// Cart session constants
const (
	CartSessionHeader = "X-Cart-Session"
)
