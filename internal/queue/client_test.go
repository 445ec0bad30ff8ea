package queue

import (
	"testing"

	"github.com/solemart/storefront/internal/config"
)

func TestDisabledClientEnqueuesAreNoOps(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("expected client disabled")
	}
	if err := client.EnqueueOrderConfirmation(OrderConfirmationPayload{OrderID: 1}); err != nil {
		t.Fatalf("disabled confirmation enqueue should be a no-op, got %v", err)
	}
	if err := client.EnqueueOrderStatusNotify(OrderStatusNotifyPayload{OrderID: 1}); err != nil {
		t.Fatalf("disabled status enqueue should be a no-op, got %v", err)
	}
	if err := client.EnqueuePaymentReconcile(); err != nil {
		t.Fatalf("disabled reconcile enqueue should be a no-op, got %v", err)
	}
}

func TestPaymentReconcileTaskType(t *testing.T) {
	task := NewPaymentReconcileTask()
	if task.Type() != TaskPaymentReconcile {
		t.Fatalf("task type want %s got %s", TaskPaymentReconcile, task.Type())
	}
}
