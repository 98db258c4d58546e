package worker

import (
	"context"
	"log/slog"
	"time"

	"booking-billing/internal/pkg/config"
	"booking-billing/internal/usecase/commands"
)

// EnforcementWorker runs the overdue sweep on a fixed interval. The sweep is
// idempotent, so overlapping runs or restarts are harmless.
type EnforcementWorker struct {
	enforcement commands.EnforcementCommands
	interval    time.Duration
	logger      *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewEnforcementWorker(enforcement commands.EnforcementCommands, cfg config.BillingConfig, logger *slog.Logger) *EnforcementWorker {
	return &EnforcementWorker{
		enforcement: enforcement,
		interval:    cfg.SweepInterval,
		logger:      logger,
	}
}

func (w *EnforcementWorker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go w.run(ctx)
}

func (w *EnforcementWorker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (w *EnforcementWorker) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *EnforcementWorker) sweep(ctx context.Context) {
	result, err := w.enforcement.Sweep(ctx)
	if err != nil {
		w.logger.ErrorContext(ctx, "enforcement sweep failed", "error", err.Error())
		return
	}
	if result.Scanned > 0 {
		w.logger.InfoContext(ctx, "enforcement sweep finished",
			"scanned", result.Scanned,
			"enforced", result.Enforced,
			"skipped", result.Skipped,
			"failed", result.Failed,
			"cancelled_reservations", result.CancelledReservations,
			"deactivated_resources", result.DeactivatedResources)
	}
}
