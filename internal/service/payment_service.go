package service

import (
	"context"
	"strings"

	"github.com/solemart/storefront/internal/config"
	"github.com/solemart/storefront/internal/constants"
	"github.com/solemart/storefront/internal/logger"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/payment/paystack"
)

// PaymentService drives gateway payments for orders.
type PaymentService struct {
	cfg      *config.PaystackConfig
	orderSvc *OrderService
	client   *paystack.Client
}

// NewPaymentService creates the payment service. The gateway client is
// nil when the gateway is disabled in config.
func NewPaymentService(cfg *config.PaystackConfig, orderSvc *OrderService) *PaymentService {
	svc := &PaymentService{cfg: cfg, orderSvc: orderSvc}
	if cfg != nil && cfg.Enabled {
		client, err := paystack.NewClient(paystack.Config{
			BaseURL:     cfg.BaseURL,
			SecretKey:   cfg.SecretKey,
			PublicKey:   cfg.PublicKey,
			CallbackURL: cfg.CallbackURL,
			TimeoutMS:   cfg.TimeoutMS,
		})
		if err != nil {
			logger.Errorw("paystack_client_init_failed", "error", err)
		} else {
			svc.client = client
		}
	}
	return svc
}

// Enabled reports whether gateway payments can be taken.
func (s *PaymentService) Enabled() bool {
	return s.client != nil
}

// InitializeForOrder starts a hosted checkout for a pending order. The
// order number doubles as the gateway reference.
func (s *PaymentService) InitializeForOrder(ctx context.Context, order *models.Order) (string, error) {
	if !s.Enabled() {
		return "", ErrPaymentDisabled
	}
	if order.Status != constants.OrderStatusPending {
		return "", ErrOrderAlreadyPaid
	}
	email := strings.TrimSpace(order.CustomerEmail)
	if email == "" {
		// Paystack requires an email address on every transaction.
		email = "orders+" + strings.ToLower(order.OrderNo) + "@solemart.ng"
	}

	result, err := s.client.Initialize(ctx, paystack.InitializeInput{
		Reference: order.OrderNo,
		Amount:    order.TotalAmount.Decimal,
		Currency:  order.Currency,
		Email:     email,
		Metadata: map[string]interface{}{
			"order_no": order.OrderNo,
			"customer": order.CustomerName,
		},
	})
	if err != nil {
		logger.Errorw("paystack_initialize_failed", "order_no", order.OrderNo, "error", err)
		return "", ErrPaymentInitFailed
	}
	if err := s.orderSvc.AttachPaymentRef(order.OrderNo, result.Reference); err != nil {
		return "", err
	}
	return result.AuthorizationURL, nil
}

// VerifyAndSettle re-checks a reference with the gateway and marks the
// order paid on success. Safe to call repeatedly.
func (s *PaymentService) VerifyAndSettle(ctx context.Context, reference string) (*models.Order, error) {
	if !s.Enabled() {
		return nil, ErrPaymentDisabled
	}
	result, err := s.client.Verify(ctx, reference)
	if err != nil {
		logger.Warnw("paystack_verify_failed", "reference", reference, "error", err)
		return nil, ErrPaymentVerifyFailed
	}
	if !result.Success() {
		return nil, ErrPaymentNotSuccessful
	}

	order, err := s.orderSvc.GetByOrderNo(result.Reference)
	if err != nil {
		return nil, err
	}
	if result.Amount.LessThan(order.TotalAmount.Decimal) {
		logger.Warnw("paystack_amount_mismatch",
			"order_no", order.OrderNo,
			"expected", order.TotalAmount.String(),
			"got", result.Amount.String(),
		)
		return nil, ErrPaymentVerifyFailed
	}
	return s.orderSvc.MarkPaid(order.OrderNo, result.Reference)
}

// HandleWebhook verifies a webhook signature and settles successful
// charge events.
func (s *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !s.Enabled() {
		return ErrPaymentDisabled
	}
	if err := s.client.VerifyWebhookSignature(body, signature); err != nil {
		return ErrPaymentVerifyFailed
	}
	event, err := paystack.ParseWebhook(body)
	if err != nil {
		return ErrPaymentVerifyFailed
	}
	if event.Event != "charge.success" {
		logger.Infow("paystack_webhook_ignored", "event", event.Event)
		return nil
	}
	_, err = s.VerifyAndSettle(ctx, event.Data.Reference)
	return err
}
