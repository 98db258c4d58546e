package notifier

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type Kind string

const (
	KindReservationCancelled Kind = "reservation_cancelled"
	KindResourceDeactivated  Kind = "resource_deactivated"
	KindStatementEnforced    Kind = "statement_enforced"
)

// Notifier delivers enforcement events to resource owners. Delivery is best
// effort and happens outside the enforcing transaction; a lost notification
// never rolls back an enforcement.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, resourceID uuid.UUID, payload map[string]any)
}

type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) Notify(ctx context.Context, kind Kind, resourceID uuid.UUID, payload map[string]any) {
	attrs := []any{
		"kind", string(kind),
		"resource_id", resourceID.String(),
	}
	for k, v := range payload {
		attrs = append(attrs, k, v)
	}
	n.logger.InfoContext(ctx, "owner notification", attrs...)
}
