package components

import (
	"context"

	"booking-billing/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewEnforcementWorker,
	),
	fx.Invoke(registerEnforcementWorker),
)

func registerEnforcementWorker(lc fx.Lifecycle, w *worker.EnforcementWorker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}
