package paygate

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeRequest carries everything the provider needs for one attempt. The
// idempotency key is the statement's stable key, so retries of the same
// statement always reach the provider as the same logical charge.
type ChargeRequest struct {
	StatementID    uuid.UUID
	IdempotencyKey uuid.UUID
	Amount         decimal.Decimal
	Currency       string
}

// Outcome is a definitive provider answer. A decline is an outcome, not an
// error; errors are reserved for not knowing what happened.
type Outcome struct {
	ExternalID string
	Declined   bool
	Reason     string
}

type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (Outcome, error)
	// Lookup resolves an earlier charge by idempotency key. The second
	// return is false when the provider has no record of it.
	Lookup(ctx context.Context, idempotencyKey uuid.UUID) (Outcome, bool, error)
	Name() string
}
