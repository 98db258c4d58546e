package commands

import (
	"context"
	"errors"
	"log/slog"

	"booking-billing/internal/infra/notifier"
	"booking-billing/internal/pkg/clock"
	"booking-billing/internal/pkg/errs"
	"booking-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type SweepResult struct {
	Scanned               int
	Enforced              int
	Skipped               int
	Failed                int
	CancelledReservations int64
	DeactivatedResources  int
}

type EnforcementCommands interface {
	// Sweep finds overdue unpaid statements and applies the enforcement
	// cascade to each: stamp the statement, cancel upcoming reservations,
	// deactivate the resource, notify the owner. Each statement is its own
	// transaction so one failure never blocks the rest.
	Sweep(ctx context.Context) (*SweepResult, error)
}

type enforcementUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier OwnerNotifier
	clock    clock.Clock
}

func NewEnforcementUseCase(uow shared.UnitOfWork, n OwnerNotifier, clk clock.Clock) EnforcementCommands {
	return &enforcementUseCaseImpl{uow: uow, notifier: n, clock: clk}
}

func (e *enforcementUseCaseImpl) Sweep(ctx context.Context) (*SweepResult, error) {
	today := clock.Today(e.clock)

	overdue, err := e.uow.Repos().Statements().ListOverdueUnenforced(ctx, today)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := &SweepResult{Scanned: len(overdue)}
	for _, st := range overdue {
		var (
			cancelled   []uuid.UUID
			deactivated bool
		)
		err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			// The enforced_at stamp is the idempotency guard: losing this
			// CAS means another sweep already handled the statement.
			won, err := tx.Statements().MarkEnforced(ctx, st.ID(), e.clock.Now())
			if err != nil {
				return err
			}
			if !won {
				return errAlreadyEnforced
			}

			if cancelled, err = tx.Reservations().CancelFrom(ctx, st.ResourceID(), today); err != nil {
				return err
			}
			if deactivated, err = tx.Resources().Deactivate(ctx, st.ResourceID()); err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, errAlreadyEnforced) {
				result.Skipped++
				continue
			}
			result.Failed++
			slog.ErrorContext(ctx, "enforcement failed",
				"statement_id", st.ID().String(),
				"resource_id", st.ResourceID().String(),
				"error", err.Error())
			continue
		}

		result.Enforced++
		result.CancelledReservations += int64(len(cancelled))
		if deactivated {
			result.DeactivatedResources++
		}

		// Notifications go out after commit; they must never roll back an
		// enforcement and a crash here only loses messages, not state.
		e.notifier.Notify(ctx, notifier.KindStatementEnforced, st.ResourceID(), map[string]any{
			"statement_id": st.ID().String(),
			"period":       st.Period().String(),
			"amount":       st.Quote().Amount.String(),
			"currency":     st.Quote().Currency,
		})
		for _, reservationID := range cancelled {
			e.notifier.Notify(ctx, notifier.KindReservationCancelled, st.ResourceID(), map[string]any{
				"reservation_id": reservationID.String(),
				"from":           today.Format("2006-01-02"),
			})
		}
		if deactivated {
			e.notifier.Notify(ctx, notifier.KindResourceDeactivated, st.ResourceID(), nil)
		}
	}

	return result, nil
}

var errAlreadyEnforced = errs.New("statement already enforced")
