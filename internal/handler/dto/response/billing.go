package response

import (
	"time"

	"booking-billing/internal/usecase/commands"
	"booking-billing/internal/usecase/queries"

	"github.com/google/uuid"
)

type BillableSummaryResponse struct {
	ResourceID      uuid.UUID `json:"resourceId"`
	ResourceName    string    `json:"resourceName"`
	PeriodStart     string    `json:"periodStart"`
	PeriodEnd       string    `json:"periodEnd"`
	EligibleCount   int       `json:"eligibleCount"`
	BillableCount   int       `json:"billableCount"`
	Limit           int       `json:"limit"`
	PercentOfLimit  float64   `json:"percentOfLimit"`
	ProjectedAmount string    `json:"projectedAmount"`
	Currency        string    `json:"currency"`
	ConflictCount   int       `json:"conflictCount"`
}

type ConflictResponse struct {
	ID          uuid.UUID `json:"id"`
	Day         string    `json:"day"`
	Slot        string    `json:"slot"`
	Status      string    `json:"status"`
	Price       string    `json:"price"`
	HasConflict bool      `json:"hasConflict"`
}

type SweepResponse struct {
	Scanned               int   `json:"scanned"`
	Enforced              int   `json:"enforced"`
	Skipped               int   `json:"skipped"`
	Failed                int   `json:"failed"`
	CancelledReservations int64 `json:"cancelledReservations"`
	DeactivatedResources  int   `json:"deactivatedResources"`
}

type ReactivationCandidateResponse struct {
	ResourceID    uuid.UUID `json:"resourceId"`
	Name          string    `json:"name"`
	EnforcedCount int       `json:"enforcedCount"`
	DeactivatedAt time.Time `json:"deactivatedAt"`
}

func FromBillableSummaryView(v *queries.BillableSummaryView) *BillableSummaryResponse {
	return &BillableSummaryResponse{
		ResourceID:      v.ResourceID,
		ResourceName:    v.ResourceName,
		PeriodStart:     v.PeriodStart.Format(time.DateOnly),
		PeriodEnd:       v.PeriodEnd.Format(time.DateOnly),
		EligibleCount:   v.EligibleCount,
		BillableCount:   v.BillableCount,
		Limit:           v.Limit,
		PercentOfLimit:  v.PercentOfLimit,
		ProjectedAmount: v.ProjectedAmount.String(),
		Currency:        v.Currency,
		ConflictCount:   v.ConflictCount,
	}
}

func FromConflictView(v *queries.ReservationConflictView) *ConflictResponse {
	return &ConflictResponse{
		ID:          v.ID,
		Day:         v.Day.Format(time.DateOnly),
		Slot:        v.Slot,
		Status:      v.Status,
		Price:       v.Price.String(),
		HasConflict: v.HasConflict,
	}
}

func FromSweepResult(r *commands.SweepResult) *SweepResponse {
	return &SweepResponse{
		Scanned:               r.Scanned,
		Enforced:              r.Enforced,
		Skipped:               r.Skipped,
		Failed:                r.Failed,
		CancelledReservations: r.CancelledReservations,
		DeactivatedResources:  r.DeactivatedResources,
	}
}

func FromReactivationCandidateView(v *queries.ReactivationCandidateView) *ReactivationCandidateResponse {
	return &ReactivationCandidateResponse{
		ResourceID:    v.ResourceID,
		Name:          v.Name,
		EnforcedCount: v.EnforcedCount,
		DeactivatedAt: v.DeactivatedAt,
	}
}
