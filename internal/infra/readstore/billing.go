package readstore

import (
	"context"
	"time"

	"booking-billing/internal/domain/reservation"
	"booking-billing/internal/infra"
	"booking-billing/internal/infra/db"
	"booking-billing/internal/pkg/pgconv"
	"booking-billing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BillingReadStore struct {
	db db.DBTX
}

func NewBillingReadStore(db db.DBTX) *BillingReadStore {
	return &BillingReadStore{db: db}
}

func (s *BillingReadStore) ResourcePricing(ctx context.Context, id uuid.UUID) (*queries.ResourcePricingView, error) {
	var (
		view         queries.ResourcePricingView
		rate         pgtype.Numeric
		monthlyLimit int32
		anchorDay    int32
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, name, active, commission_model, commission_rate, currency, monthly_limit, anchor_day
		FROM resources WHERE id = $1`, id).Scan(
		&view.ID, &view.Name, &view.Active, &view.Model, &rate, &view.Currency, &monthlyLimit, &anchorDay,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource pricing", err)
	}
	view.Limit = int(monthlyLimit)
	view.AnchorDay = int(anchorDay)
	if view.Rate, err = pgconv.DecimalFromNumeric(rate); err != nil {
		return nil, infra.WrapRepoErr("failed to convert commission rate", err)
	}
	return &view, nil
}

func (s *BillingReadStore) ListReservations(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]*reservation.Reservation, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, resource_id, day, slot, status, price, created_at, updated_at
		FROM reservations
		WHERE resource_id = $1 AND day BETWEEN $2 AND $3
		ORDER BY day, slot, created_at`,
		resourceID, pgconv.DateToPgtype(start), pgconv.DateToPgtype(end))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		var (
			id, resID            uuid.UUID
			day                  pgtype.Date
			slotValue, status    string
			price                pgtype.Numeric
			createdAt, updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &resID, &day, &slotValue, &status, &price, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		priceDec, err := pgconv.DecimalFromNumeric(price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation price", err)
		}
		slot, err := reservation.NewSlot(slotValue)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid slot in storage", err)
		}
		result = append(result, reservation.ReconstructReservation(
			id, resID, day.Time, slot,
			reservation.Status(status), priceDec,
			createdAt.Time, updatedAt.Time,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}

func (s *BillingReadStore) FxRate(ctx context.Context, currency string) (decimal.Decimal, error) {
	var rate pgtype.Numeric
	err := s.db.QueryRow(ctx, `SELECT rate FROM fx_rates WHERE currency = $1`, currency).Scan(&rate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return decimal.Decimal{}, infra.WrapRepoErr("fx rate not found", err, infra.KindNotFound)
		}
		return decimal.Decimal{}, infra.WrapRepoErr("failed to find fx rate", err)
	}
	rateDec, err := pgconv.DecimalFromNumeric(rate)
	if err != nil {
		return decimal.Decimal{}, infra.WrapRepoErr("failed to convert fx rate", err)
	}
	return rateDec, nil
}

// ReactivationCandidates lists deactivated resources whose enforced
// statements have all since been paid. Reactivation itself stays a manual
// owner action.
func (s *BillingReadStore) ReactivationCandidates(ctx context.Context) ([]*queries.ReactivationCandidateView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT r.id, r.name, COUNT(s.id) FILTER (WHERE s.enforced_at IS NOT NULL), r.updated_at
		FROM resources r
		LEFT JOIN statements s ON s.resource_id = r.id
		WHERE r.active = false
		GROUP BY r.id, r.name, r.updated_at
		HAVING COUNT(s.id) FILTER (WHERE s.enforced_at IS NOT NULL AND s.status <> 'paid') = 0
		ORDER BY r.updated_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reactivation candidates", err)
	}
	defer rows.Close()

	var result []*queries.ReactivationCandidateView
	for rows.Next() {
		var (
			view          queries.ReactivationCandidateView
			enforcedCount int64
			updatedAt     pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ResourceID, &view.Name, &enforcedCount, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reactivation candidate", err)
		}
		view.EnforcedCount = int(enforcedCount)
		view.DeactivatedAt = updatedAt.Time
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reactivation candidates", err)
	}
	return result, nil
}
