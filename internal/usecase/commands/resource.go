package commands

import (
	"context"

	"booking-billing/internal/infra"
	"booking-billing/internal/pkg/errs"
	"booking-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResourceAlreadyActive = errs.New("resource is already active")
	ErrOutstandingStatements = errs.New("resource has unpaid enforced statements")
)

type ResourceCommands interface {
	// Reactivate turns a deactivated resource back on, but only after every
	// statement that triggered enforcement has been paid. Reactivation is
	// always an explicit owner action, never automatic.
	Reactivate(ctx context.Context, resourceID uuid.UUID) error
}

type resourceUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewResourceUseCase(uow shared.UnitOfWork) ResourceCommands {
	return &resourceUseCaseImpl{uow: uow}
}

func (r *resourceUseCaseImpl) Reactivate(ctx context.Context, resourceID uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().FindByID(ctx, resourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrResourceNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if res.Active() {
			return ErrResourceAlreadyActive
		}

		outstanding, err := tx.Statements().CountUnpaidEnforced(ctx, resourceID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if outstanding > 0 {
			return ErrOutstandingStatements
		}

		if _, err := tx.Resources().Activate(ctx, resourceID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
