package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type StatementView struct {
	ID             uuid.UUID        `json:"id"`
	ResourceID     uuid.UUID        `json:"resource_id"`
	ResourceName   string           `json:"resource_name"`
	PeriodStart    time.Time        `json:"period_start"`
	PeriodEnd      time.Time        `json:"period_end"`
	BillableCount  int              `json:"billable_count"`
	Amount         decimal.Decimal  `json:"amount"`
	Currency       string           `json:"currency"`
	FxRate         *decimal.Decimal `json:"fx_rate,omitempty"`
	DueDate        time.Time        `json:"due_date"`
	Status         string           `json:"status"`
	Overdue        bool             `json:"overdue"`
	PaidAt         *time.Time       `json:"paid_at,omitempty"`
	TransactionID  *uuid.UUID       `json:"transaction_id,omitempty"`
	EnforcedAt     *time.Time       `json:"enforced_at,omitempty"`
	IdempotencyKey uuid.UUID        `json:"idempotency_key"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type StatementListItem struct {
	ID            uuid.UUID       `json:"id"`
	ResourceID    uuid.UUID       `json:"resource_id"`
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	BillableCount int             `json:"billable_count"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	DueDate       time.Time       `json:"due_date"`
	Status        string          `json:"status"`
	Overdue       bool            `json:"overdue"`
	CreatedAt     time.Time       `json:"created_at"`
}

type TransactionView struct {
	ID          uuid.UUID       `json:"id"`
	StatementID uuid.UUID       `json:"statement_id"`
	ExternalID  string          `json:"external_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Outcome     string          `json:"outcome"`
	Reason      *string         `json:"reason,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BillableSummaryView is the admin panel's mid-period preview of what the
// next statement would look like if generated now. Nothing is persisted.
type BillableSummaryView struct {
	ResourceID      uuid.UUID       `json:"resource_id"`
	ResourceName    string          `json:"resource_name"`
	PeriodStart     time.Time       `json:"period_start"`
	PeriodEnd       time.Time       `json:"period_end"`
	EligibleCount   int             `json:"eligible_count"`
	BillableCount   int             `json:"billable_count"`
	Limit           int             `json:"limit"`
	PercentOfLimit  float64         `json:"percent_of_limit"`
	ProjectedAmount decimal.Decimal `json:"projected_amount"`
	Currency        string          `json:"currency"`
	ConflictCount   int             `json:"conflict_count"`
}

type ReservationConflictView struct {
	ID          uuid.UUID       `json:"id"`
	Day         time.Time       `json:"day"`
	Slot        string          `json:"slot"`
	Status      string          `json:"status"`
	Price       decimal.Decimal `json:"price"`
	HasConflict bool            `json:"has_conflict"`
}

// ResourcePricingView is the command-side snapshot of a resource's billing
// configuration, read fresh per operation.
type ResourcePricingView struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Active    bool            `json:"active"`
	Model     string          `json:"model"`
	Rate      decimal.Decimal `json:"rate"`
	Currency  string          `json:"currency"`
	Limit     int             `json:"limit"`
	AnchorDay int             `json:"anchor_day"`
}

type ReactivationCandidateView struct {
	ResourceID    uuid.UUID `json:"resource_id"`
	Name          string    `json:"name"`
	EnforcedCount int       `json:"enforced_count"`
	DeactivatedAt time.Time `json:"deactivated_at"`
}
