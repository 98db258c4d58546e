package statement

import (
	"errors"
	"time"

	"booking-billing/internal/domain/billing"

	"github.com/google/uuid"
)

var (
	ErrNotPayable      = errors.New("statement is not payable")
	ErrNotProcessing   = errors.New("statement is not processing")
	ErrAlreadyEnforced = errors.New("statement is already enforced")
	ErrNegativeCount   = errors.New("billable count cannot be negative")
	ErrNegativeAmount  = errors.New("statement amount cannot be negative")
	ErrEmptyCurrency   = errors.New("statement currency cannot be empty")
)

// Statement is the commission invoice for one resource and one billing
// period. Amount, currency, billable count and the fx snapshot are fixed at
// generation time; later pricing or fx changes never touch an existing row.
type Statement struct {
	id             uuid.UUID
	resourceID     uuid.UUID
	period         billing.Period
	quote          billing.Quote
	dueDate        time.Time
	status         Status
	paidAt         *time.Time
	transactionID  *uuid.UUID
	enforcedAt     *time.Time
	idempotencyKey uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

func NewStatement(
	resourceID uuid.UUID,
	period billing.Period,
	quote billing.Quote,
	graceDays int,
) (*Statement, error) {
	if quote.BillableCount < 0 {
		return nil, ErrNegativeCount
	}
	if quote.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if quote.Currency == "" {
		return nil, ErrEmptyCurrency
	}

	return &Statement{
		id:             uuid.New(),
		resourceID:     resourceID,
		period:         period,
		quote:          quote,
		dueDate:        period.DueDate(graceDays),
		status:         StatusPending,
		idempotencyKey: uuid.New(),
	}, nil
}

func ReconstructStatement(
	id, resourceID uuid.UUID,
	period billing.Period,
	quote billing.Quote,
	dueDate time.Time,
	status Status,
	paidAt *time.Time,
	transactionID *uuid.UUID,
	enforcedAt *time.Time,
	idempotencyKey uuid.UUID,
	createdAt, updatedAt time.Time,
) *Statement {
	return &Statement{
		id:             id,
		resourceID:     resourceID,
		period:         period,
		quote:          quote,
		dueDate:        dueDate,
		status:         status,
		paidAt:         paidAt,
		transactionID:  transactionID,
		enforcedAt:     enforcedAt,
		idempotencyKey: idempotencyKey,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// IsOverdue is derived, never stored: an unpaid statement past its due date.
// A processing statement is not overdue; the in-flight attempt decides it.
func (s *Statement) IsOverdue(now time.Time) bool {
	return OverdueAt(s.status, s.dueDate, now)
}

// OverdueAt is the single overdue derivation shared by the read side and the
// enforcement sweep. It compares at date granularity: the due date day itself
// is still on time, and the condition holds from the next UTC day on, which
// matches the sweep's `due_date < today` selection.
func OverdueAt(status Status, dueDate, now time.Time) bool {
	if status != StatusPending {
		return false
	}
	u := now.UTC()
	today := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return today.After(dueDate)
}

func (s *Statement) IsEnforced() bool {
	return s.enforcedAt != nil
}

// BeginPayment moves pending|failed to processing. Racing callers must be
// arbitrated by the storage layer's compare-and-set; this method encodes the
// legal transition only.
func (s *Statement) BeginPayment() error {
	if !s.status.Payable() {
		return ErrNotPayable
	}
	s.status = StatusProcessing
	return nil
}

// CompletePayment moves processing to paid. Calling it again for an
// already-paid statement is a no-op so replayed confirmations cannot
// double-apply.
func (s *Statement) CompletePayment(transactionID uuid.UUID, now time.Time) error {
	if s.status == StatusPaid {
		return nil
	}
	if s.status != StatusProcessing {
		return ErrNotProcessing
	}
	s.status = StatusPaid
	s.paidAt = &now
	s.transactionID = &transactionID
	return nil
}

// FailPayment moves processing to failed. The due date is never extended on
// failure; retries are explicit new BeginPayment calls.
func (s *Statement) FailPayment() error {
	if s.status != StatusProcessing {
		return ErrNotProcessing
	}
	s.status = StatusFailed
	return nil
}

// MarkEnforced stamps the cascade timestamp exactly once.
func (s *Statement) MarkEnforced(now time.Time) error {
	if s.enforcedAt != nil {
		return ErrAlreadyEnforced
	}
	s.enforcedAt = &now
	return nil
}

func (s *Statement) ID() uuid.UUID            { return s.id }
func (s *Statement) ResourceID() uuid.UUID    { return s.resourceID }
func (s *Statement) Period() billing.Period   { return s.period }
func (s *Statement) Quote() billing.Quote     { return s.quote }
func (s *Statement) DueDate() time.Time       { return s.dueDate }
func (s *Statement) Status() Status           { return s.status }
func (s *Statement) PaidAt() *time.Time       { return s.paidAt }
func (s *Statement) TransactionID() *uuid.UUID { return s.transactionID }
func (s *Statement) EnforcedAt() *time.Time   { return s.enforcedAt }
func (s *Statement) IdempotencyKey() uuid.UUID { return s.idempotencyKey }
func (s *Statement) CreatedAt() time.Time     { return s.createdAt }
func (s *Statement) UpdatedAt() time.Time     { return s.updatedAt }
