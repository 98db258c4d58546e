package repository

import (
	"context"
	"time"

	"booking-billing/internal/domain/billing"
	"booking-billing/internal/infra"
	"booking-billing/internal/infra/db"
	"booking-billing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) CountEligible(ctx context.Context, resourceID uuid.UUID, period billing.Period) (int, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM reservations
		WHERE resource_id = $1 AND day BETWEEN $2 AND $3 AND status <> 'cancelled'`,
		resourceID,
		pgconv.DateToPgtype(period.Start()),
		pgconv.DateToPgtype(period.End()),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count eligible reservations", err)
	}
	return int(count), nil
}

func (r *ReservationRepository) CancelFrom(ctx context.Context, resourceID uuid.UUID, from time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE reservations SET status = 'cancelled', updated_at = now()
		WHERE resource_id = $1 AND day >= $2 AND status <> 'cancelled'
		RETURNING id`,
		resourceID, pgconv.DateToPgtype(from))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to cancel reservations", err)
	}
	defer rows.Close()

	var cancelled []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cancelled reservation id", err)
		}
		cancelled = append(cancelled, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cancelled reservation ids", err)
	}
	return cancelled, nil
}
