package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"github.com/solemart/storefront/internal/constants"
)

const (
	// TaskOrderConfirmation notifies the store about a new order.
	TaskOrderConfirmation = constants.TaskOrderConfirmation
	// TaskOrderStatusNotify notifies the customer about a status change.
	TaskOrderStatusNotify = constants.TaskOrderStatusNotify
	// TaskPaymentReconcile re-verifies stuck pending gateway payments.
	TaskPaymentReconcile = constants.TaskPaymentReconcile
)

// OrderConfirmationPayload is the new-order notification payload.
type OrderConfirmationPayload struct {
	OrderID uint `json:"order_id"`
}

// OrderStatusNotifyPayload is the status-change notification payload.
type OrderStatusNotifyPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// NewOrderConfirmationTask builds the confirmation task.
func NewOrderConfirmationTask(payload OrderConfirmationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmation, body), nil
}

// NewOrderStatusNotifyTask builds the status notification task.
func NewOrderStatusNotifyTask(payload OrderStatusNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusNotify, body), nil
}

// NewPaymentReconcileTask builds the reconciliation sweep task.
func NewPaymentReconcileTask() *asynq.Task {
	return asynq.NewTask(TaskPaymentReconcile, nil)
}
