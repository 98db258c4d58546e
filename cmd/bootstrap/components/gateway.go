package components

import (
	"log/slog"

	"booking-billing/internal/infra/notifier"
	"booking-billing/internal/infra/paygate"
	"booking-billing/internal/pkg/config"
	"booking-billing/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentGateway,
		NewOwnerNotifier,
	),
)

func NewPaymentGateway(cfg config.Config) (commands.PaymentGateway, error) {
	return paygate.NewGateway(cfg.Gateway)
}

func NewOwnerNotifier(logger *slog.Logger) commands.OwnerNotifier {
	return notifier.NewSlogNotifier(logger)
}
