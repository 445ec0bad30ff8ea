package worker

import (
	"context"
	"errors"
	"time"

	"github.com/hibiken/asynq"

	"github.com/solemart/storefront/internal/config"
	"github.com/solemart/storefront/internal/logger"
	"github.com/solemart/storefront/internal/queue"
)

// Service runs the asynq server plus periodic sweeps.
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService creates the queue worker service.
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start runs the queue server.
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.PaymentService != nil && s.consumer.PaymentService.Enabled() {
		go s.runPaymentReconcileLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop shuts the queue server down.
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

func (s *Service) runPaymentReconcileLoop(ctx context.Context) {
	if s == nil || s.consumer == nil {
		return
	}
	interval := defaultReconcileMinAge
	if s.consumer.Config != nil && s.consumer.Config.Order.ReconcileIntervalMinutes > 0 {
		interval = time.Duration(s.consumer.Config.Order.ReconcileIntervalMinutes) * time.Minute
	}

	// Enqueue through asynq when the producer is up so the sweep gets its
	// retry and visibility semantics; sweep in-process otherwise.
	runOnce := func() {
		if s.consumer.QueueClient.Enabled() {
			err := s.consumer.QueueClient.EnqueuePaymentReconcile()
			if err == nil {
				return
			}
			logger.Warnw("worker_payment_reconcile_enqueue_failed", "error", err)
		}
		if err := s.consumer.reconcileStuckPayments(ctx); err != nil {
			logger.Warnw("worker_payment_reconcile_run_failed", "error", err)
		}
	}
	runOnce()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
