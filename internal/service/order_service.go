package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solemart/storefront/internal/constants"
	"github.com/solemart/storefront/internal/logger"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

// allowedTransitions is the order status machine. Cancellation is allowed
// from every non-terminal status.
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusPaid:      true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusPaid: {
		constants.OrderStatusProcessing: true,
		constants.OrderStatusCancelled:  true,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusShipped:   true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCancelled: true,
	},
}

func isTransitionAllowed(current, target string) bool {
	if current == target {
		return true
	}
	nexts, ok := allowedTransitions[current]
	if !ok {
		return false
	}
	return nexts[target]
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("SM%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}

// CreateOrderInput is the validated checkout boundary input.
type CreateOrderInput struct {
	SessionKey    string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	ZoneID        uint
	Address       string
	PromoCode     string
	PaymentMethod string
	Note          string
	ClientIP      string
}

// OrderService turns carts into persisted order snapshots and drives the
// order status machine.
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	cartSvc     *CartService
	promoSvc    *PromotionService
	deliverySvc *DeliveryService
	currency    string
}

// NewOrderService creates the order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	cartSvc *CartService,
	promoSvc *PromotionService,
	deliverySvc *DeliveryService,
	currency string,
) *OrderService {
	if currency == "" {
		currency = constants.SiteCurrencyDefault
	}
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		cartSvc:     cartSvc,
		promoSvc:    promoSvc,
		deliverySvc: deliverySvc,
		currency:    currency,
	}
}

// CreateOrder snapshots the cart into an order inside one transaction.
// Item names and prices are frozen at this point and never recomputed.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	if input.CustomerName == "" || input.CustomerPhone == "" {
		return nil, ErrOrderMissingCustomer
	}
	method := strings.TrimSpace(input.PaymentMethod)
	if method != constants.PaymentMethodPaystack && method != constants.PaymentMethodWhatsapp {
		method = constants.PaymentMethodWhatsapp
	}

	cart, err := s.cartRepo.GetBySession(strings.TrimSpace(input.SessionKey))
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}
	for _, item := range cart.Items {
		if item.Variant == nil {
			return nil, ErrVariantNotFound
		}
		if !item.Variant.IsActive || !item.Variant.InStock {
			return nil, ErrVariantUnavailable
		}
	}

	subtotal := s.cartSvc.Subtotal(cart)

	var discount models.Money
	var promotionID *uint
	var promotionCode string
	if code := strings.TrimSpace(input.PromoCode); code != "" {
		resolved, err := s.promoSvc.Resolve(code, subtotal, scopeItemsOf(cart))
		if err != nil {
			return nil, err
		}
		discount = resolved.Discount
		promotionID = &resolved.Promotion.ID
		promotionCode = resolved.Promotion.Code
	}

	quote, err := s.deliverySvc.ResolveFee(input.ZoneID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNo:        generateOrderNo(),
		SessionKey:     cart.SessionKey,
		Status:         constants.OrderStatusPending,
		Currency:       s.currency,
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		CustomerEmail:  strings.TrimSpace(input.CustomerEmail),
		DeliveryZone:   quote.ZoneName,
		DeliveryAddr:   strings.TrimSpace(input.Address),
		RequiresQuote:  quote.RequiresQuote,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		DeliveryFee:    quote.Fee,
		TotalAmount:    Total(subtotal, discount, quote.Fee),
		PromotionID:    promotionID,
		PromotionCode:  promotionCode,
		PaymentMethod:  method,
		Note:           strings.TrimSpace(input.Note),
		ClientIP:       input.ClientIP,
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		variant := line.Variant
		unit := variant.EffectivePrice()
		name := ""
		if variant.Product != nil {
			name = variant.Product.Name
		}
		items = append(items, models.OrderItem{
			ProductID:   variant.ProductID,
			VariantID:   variant.ID,
			ProductName: name,
			SizeLabel:   variant.Size.Label,
			UnitPrice:   unit,
			Quantity:    line.Quantity,
			TotalPrice:  models.NewMoneyFromDecimal(unit.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))),
		})
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return err
		}
		cartTx := s.cartRepo.WithTx(tx)
		if err := cartTx.ClearItems(cart.ID); err != nil {
			return err
		}
		return cartTx.Close(cart.ID)
	})
	if err != nil {
		logger.Errorw("order_create_failed", "error", err, "session", cart.SessionKey)
		return nil, ErrOrderCreateFailed
	}

	order.Items = items
	logger.Infow("order_created",
		"order_no", order.OrderNo,
		"total", order.TotalAmount.String(),
		"payment_method", order.PaymentMethod,
	)
	return order, nil
}

func scopeItemsOf(cart *models.Cart) []ScopeItem {
	items := make([]ScopeItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		if line.Variant == nil {
			continue
		}
		item := ScopeItem{ProductID: line.Variant.ProductID}
		if line.Variant.Product != nil {
			item.CategoryID = line.Variant.Product.CategoryID
		}
		items = append(items, item)
	}
	return items
}

// GetByOrderNo fetches an order by order number.
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrders returns a filtered admin order page.
func (s *OrderService) ListOrders(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// MarkPaid records a gateway reference and moves pending to paid.
func (s *OrderService) MarkPaid(orderNo, reference string) (*models.Order, error) {
	order, err := s.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order.Status == constants.OrderStatusPaid {
		return order, nil
	}
	if !isTransitionAllowed(order.Status, constants.OrderStatusPaid) {
		return nil, ErrOrderStatusInvalid
	}
	now := time.Now()
	updates := map[string]interface{}{
		"paid_at":     &now,
		"payment_ref": strings.TrimSpace(reference),
	}
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusPaid, updates); err != nil {
		return nil, err
	}
	logger.Infow("order_marked_paid", "order_no", order.OrderNo, "reference", reference)
	return s.orderRepo.GetByID(order.ID)
}

// AttachPaymentRef stores the gateway reference on a still-pending order.
func (s *OrderService) AttachPaymentRef(orderNo, reference string) error {
	order, err := s.GetByOrderNo(orderNo)
	if err != nil {
		return err
	}
	return s.orderRepo.UpdateStatus(order.ID, order.Status, map[string]interface{}{
		"payment_ref": strings.TrimSpace(reference),
	})
}

// UpdateStatus applies an admin-driven status change through the
// transition table.
func (s *OrderService) UpdateStatus(id uint, target string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	target = strings.ToLower(strings.TrimSpace(target))
	if !isTransitionAllowed(order.Status, target) {
		return nil, ErrOrderStatusInvalid
	}
	updates := map[string]interface{}{}
	now := time.Now()
	switch target {
	case constants.OrderStatusPaid:
		updates["paid_at"] = &now
	case constants.OrderStatusCancelled:
		updates["canceled_at"] = &now
	}
	if err := s.orderRepo.UpdateStatus(order.ID, target, updates); err != nil {
		return nil, err
	}
	logger.Infow("order_status_updated", "order_no", order.OrderNo, "from", order.Status, "to", target)
	return s.orderRepo.GetByID(order.ID)
}
