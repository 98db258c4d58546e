package shared

import (
	"context"
	"time"

	"booking-billing/internal/domain/billing"
	"booking-billing/internal/domain/reservation"
	"booking-billing/internal/domain/resource"
	"booking-billing/internal/domain/statement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: full transaction for write operations, with retry on
	// serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Repos: pool-backed repositories using implicit transactions, for
	// single-statement operations and command-side reads.
	Repos() Tx
}

type Tx interface {
	Statements() StatementRepository
	Transactions() TransactionRepository
	Reservations() ReservationRepository
	Resources() ResourceRepository
	FxRates() FxRateRepository
}

type StatementRepository interface {
	// Insert writes a freshly generated statement. When a statement for the
	// same resource and period start already exists, nothing is written and
	// created is false; the caller reloads the existing row.
	Insert(ctx context.Context, st *statement.Statement) (created bool, err error)
	FindByID(ctx context.Context, id uuid.UUID) (*statement.Statement, error)
	FindByResourcePeriod(ctx context.Context, resourceID uuid.UUID, periodStart time.Time) (*statement.Statement, error)
	FindByIdempotencyKey(ctx context.Context, key uuid.UUID) (*statement.Statement, error)

	// Compare-and-set transitions. Each returns whether this caller won the
	// transition; a false result with a nil error means another writer got
	// there first or the row was not in the required state.
	BeginPayment(ctx context.Context, id uuid.UUID) (bool, error)
	CompletePayment(ctx context.Context, id, transactionID uuid.UUID, paidAt time.Time) (bool, error)
	FailPayment(ctx context.Context, id uuid.UUID) (bool, error)
	MarkEnforced(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	ListOverdueUnenforced(ctx context.Context, asOf time.Time) ([]*statement.Statement, error)
	// CountUnpaidEnforced counts enforced statements that are still unpaid,
	// the blocker for reactivating a resource.
	CountUnpaidEnforced(ctx context.Context, resourceID uuid.UUID) (int, error)
}

type TransactionRepository interface {
	Record(ctx context.Context, t *statement.Transaction) error
	ListByStatement(ctx context.Context, statementID uuid.UUID) ([]*statement.Transaction, error)
}

type ReservationRepository interface {
	// CountEligible counts non-cancelled reservations whose day falls inside
	// the period. Conflicts do not reduce the count.
	CountEligible(ctx context.Context, resourceID uuid.UUID, period billing.Period) (int, error)
	// CancelFrom cancels every non-cancelled reservation on or after the
	// given day and returns the ids of the rows it changed.
	CancelFrom(ctx context.Context, resourceID uuid.UUID, from time.Time) ([]uuid.UUID, error)
}

type ResourceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	// Deactivate flips active true to false; false means it was already off.
	Deactivate(ctx context.Context, id uuid.UUID) (bool, error)
	Activate(ctx context.Context, id uuid.UUID) (bool, error)
}

type FxRateRepository interface {
	// Rate returns how many units of the given currency one USD buys.
	Rate(ctx context.Context, currency string) (decimal.Decimal, error)
}

// ConflictSummary condenses annotated reservations into the counts the
// read side reports.
type ConflictSummary struct {
	Total      int
	Conflicted int
}

func SummarizeConflicts(annotated []reservation.Annotated) ConflictSummary {
	s := ConflictSummary{Total: len(annotated)}
	for _, a := range annotated {
		if a.HasConflict {
			s.Conflicted++
		}
	}
	return s
}
