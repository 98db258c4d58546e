package queries

import (
	"context"
	"time"

	"booking-billing/internal/domain/billing"
	"booking-billing/internal/domain/reservation"
	"booking-billing/internal/pkg/clock"
	"booking-billing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillingQueries interface {
	// BillableSummary previews the statement the current period would
	// produce if generated at ref. A zero ref means "now".
	BillableSummary(ctx context.Context, resourceID uuid.UUID, ref time.Time) (*BillableSummaryView, error)
	// Conflicts lists the period's reservations with derived double-booking
	// flags. Advisory only; nothing is excluded or persisted.
	Conflicts(ctx context.Context, resourceID uuid.UUID, ref time.Time) ([]*ReservationConflictView, error)
	ReactivationEligible(ctx context.Context) ([]*ReactivationCandidateView, error)
}

type BillingReadRepo interface {
	ResourcePricing(ctx context.Context, id uuid.UUID) (*ResourcePricingView, error)
	ListReservations(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]*reservation.Reservation, error)
	FxRate(ctx context.Context, currency string) (decimal.Decimal, error)
	ReactivationCandidates(ctx context.Context) ([]*ReactivationCandidateView, error)
}

type billingQueriesImpl struct {
	repo BillingReadRepo
	clk  clock.Clock
}

func NewBillingQueries(repo BillingReadRepo, clk clock.Clock) BillingQueries {
	return &billingQueriesImpl{repo: repo, clk: clk}
}

func (q *billingQueriesImpl) BillableSummary(ctx context.Context, resourceID uuid.UUID, ref time.Time) (*BillableSummaryView, error) {
	res, period, err := q.resolvePeriod(ctx, resourceID, ref)
	if err != nil {
		return nil, err
	}

	rows, err := q.repo.ListReservations(ctx, resourceID, period.Start(), period.End())
	if err != nil {
		return nil, err
	}

	annotated := reservation.AnnotateConflicts(rows)
	conflicts := shared.SummarizeConflicts(annotated)
	eligible := 0
	for _, a := range annotated {
		if a.Reservation.IsBillable() {
			eligible++
		}
	}

	pricing := billing.Pricing{
		Model:    billing.Model(res.Model),
		Rate:     res.Rate,
		Currency: res.Currency,
		Limit:    res.Limit,
	}
	var fxRate *decimal.Decimal
	if pricing.Model == billing.ModelUSDAuto {
		rate, err := q.repo.FxRate(ctx, res.Currency)
		if err != nil {
			return nil, err
		}
		fxRate = &rate
	}
	quote, err := billing.NewQuote(eligible, pricing, fxRate)
	if err != nil {
		return nil, err
	}

	return &BillableSummaryView{
		ResourceID:      res.ID,
		ResourceName:    res.Name,
		PeriodStart:     period.Start(),
		PeriodEnd:       period.End(),
		EligibleCount:   eligible,
		BillableCount:   quote.BillableCount,
		Limit:           res.Limit,
		PercentOfLimit:  billing.PercentOfLimit(eligible, res.Limit),
		ProjectedAmount: quote.Amount,
		Currency:        quote.Currency,
		ConflictCount:   conflicts.Conflicted,
	}, nil
}

func (q *billingQueriesImpl) Conflicts(ctx context.Context, resourceID uuid.UUID, ref time.Time) ([]*ReservationConflictView, error) {
	_, period, err := q.resolvePeriod(ctx, resourceID, ref)
	if err != nil {
		return nil, err
	}

	rows, err := q.repo.ListReservations(ctx, resourceID, period.Start(), period.End())
	if err != nil {
		return nil, err
	}

	annotated := reservation.AnnotateConflicts(rows)
	result := make([]*ReservationConflictView, len(annotated))
	for i, a := range annotated {
		result[i] = &ReservationConflictView{
			ID:          a.Reservation.ID(),
			Day:         a.Reservation.Day(),
			Slot:        a.Reservation.Slot().String(),
			Status:      a.Reservation.Status().String(),
			Price:       a.Reservation.Price(),
			HasConflict: a.HasConflict,
		}
	}
	return result, nil
}

func (q *billingQueriesImpl) ReactivationEligible(ctx context.Context) ([]*ReactivationCandidateView, error) {
	return q.repo.ReactivationCandidates(ctx)
}

func (q *billingQueriesImpl) resolvePeriod(ctx context.Context, resourceID uuid.UUID, ref time.Time) (*ResourcePricingView, billing.Period, error) {
	res, err := q.repo.ResourcePricing(ctx, resourceID)
	if err != nil {
		return nil, billing.Period{}, err
	}
	if ref.IsZero() {
		ref = q.clk.Now()
	}
	period, err := billing.PeriodFor(ref, res.AnchorDay)
	if err != nil {
		return nil, billing.Period{}, err
	}
	return res, period, nil
}
