package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"

	"github.com/solemart/storefront/internal/logger"
	"github.com/solemart/storefront/internal/provider"
	"github.com/solemart/storefront/internal/queue"
	"github.com/solemart/storefront/internal/service"
)

const (
	defaultReconcileMinAge = 10 * time.Minute
	defaultReconcileWindow = 48 * time.Hour
)

// Consumer handles queued storefront tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires task handlers into the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmation, c.handleOrderConfirmation)
	mux.HandleFunc(queue.TaskOrderStatusNotify, c.handleOrderStatusNotify)
	mux.HandleFunc(queue.TaskPaymentReconcile, c.handlePaymentReconcile)
}

func (c *Consumer) handleOrderConfirmation(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_confirmation_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	link := ""
	if c.SupportService != nil {
		link = c.SupportService.OrderLink(order)
	}
	logger.Infow("order_confirmation_dispatched",
		"order_no", order.OrderNo,
		"customer_phone", order.CustomerPhone,
		"payment_method", order.PaymentMethod,
		"total_amount", order.TotalAmount.String(),
		"whatsapp_link", link,
	)
	return nil
}

func (c *Consumer) handleOrderStatusNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_notify_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_notify_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_notify_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	status := payload.Status
	if status == "" {
		status = order.Status
	}
	logger.Infow("order_status_notified",
		"order_no", order.OrderNo,
		"customer_phone", order.CustomerPhone,
		"status", status,
	)
	return nil
}

func (c *Consumer) handlePaymentReconcile(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_payment_reconcile_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	return c.reconcileStuckPayments(ctx)
}

// reconcileStuckPayments re-verifies gateway references for orders that stayed
// pending after the customer was redirected to the gateway.
func (c *Consumer) reconcileStuckPayments(ctx context.Context) error {
	if c == nil || c.PaymentService == nil || !c.PaymentService.Enabled() {
		logger.Debugw("worker_payment_reconcile_skip_gateway_disabled")
		return nil
	}

	minAge := defaultReconcileMinAge
	window := defaultReconcileWindow
	if c.Config != nil {
		if c.Config.Order.ReconcileIntervalMinutes > 0 {
			minAge = time.Duration(c.Config.Order.ReconcileIntervalMinutes) * time.Minute
		}
		if c.Config.Order.ReconcileWindowHours > 0 {
			window = time.Duration(c.Config.Order.ReconcileWindowHours) * time.Hour
		}
	}

	now := time.Now()
	orders, err := c.OrderRepo.ListStuckPending(now.Add(-minAge), now.Add(-window))
	if err != nil {
		logger.Warnw("worker_payment_reconcile_list_failed", "error", err)
		return err
	}
	if len(orders) == 0 {
		return nil
	}

	settled := 0
	for i := range orders {
		order := &orders[i]
		if order.PaymentRef == "" {
			continue
		}
		if _, err := c.PaymentService.VerifyAndSettle(ctx, order.PaymentRef); err != nil {
			switch {
			case errors.Is(err, service.ErrPaymentNotSuccessful):
				logger.Debugw("worker_payment_reconcile_still_pending", "order_no", order.OrderNo)
			case errors.Is(err, service.ErrPaymentVerifyFailed):
				logger.Warnw("worker_payment_reconcile_verify_failed", "order_no", order.OrderNo, "error", err)
			default:
				logger.Warnw("worker_payment_reconcile_settle_failed", "order_no", order.OrderNo, "error", err)
			}
			continue
		}
		settled++
	}
	logger.Infow("payment_reconcile_sweep_done", "checked", len(orders), "settled", settled)
	return nil
}
