package commands

import (
	"context"

	"booking-billing/internal/infra/notifier"
	"booking-billing/internal/infra/paygate"

	"github.com/google/uuid"
)

// Local ports so command implementations can be tested against hand mocks.

type PaymentGateway interface {
	Charge(ctx context.Context, req paygate.ChargeRequest) (paygate.Outcome, error)
	Lookup(ctx context.Context, idempotencyKey uuid.UUID) (paygate.Outcome, bool, error)
}

type OwnerNotifier interface {
	Notify(ctx context.Context, kind notifier.Kind, resourceID uuid.UUID, payload map[string]any)
}
