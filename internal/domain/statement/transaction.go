package statement

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOutcome = errors.New("invalid transaction outcome")
	ErrEmptyExternal  = errors.New("successful transaction requires an external id")
)

// Transaction records one payment attempt against a statement. A statement
// may accumulate many failed transactions but at most one success, which is
// the one tied to its paid state. Every gateway outcome is recorded before
// it is surfaced, so no result is lost if the caller goes away.
type Transaction struct {
	id          uuid.UUID
	statementID uuid.UUID
	externalID  string
	amount      decimal.Decimal
	currency    string
	outcome     Outcome
	reason      *string
	createdAt   time.Time
}

func NewTransaction(
	statementID uuid.UUID,
	externalID string,
	amount decimal.Decimal,
	currency string,
	outcome Outcome,
	reason *string,
) (*Transaction, error) {
	if !outcome.IsValid() {
		return nil, ErrInvalidOutcome
	}
	if outcome == OutcomeSuccess && externalID == "" {
		return nil, ErrEmptyExternal
	}

	return &Transaction{
		id:          uuid.New(),
		statementID: statementID,
		externalID:  externalID,
		amount:      amount,
		currency:    currency,
		outcome:     outcome,
		reason:      reason,
	}, nil
}

func ReconstructTransaction(
	id, statementID uuid.UUID,
	externalID string,
	amount decimal.Decimal,
	currency string,
	outcome Outcome,
	reason *string,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		id:          id,
		statementID: statementID,
		externalID:  externalID,
		amount:      amount,
		currency:    currency,
		outcome:     outcome,
		reason:      reason,
		createdAt:   createdAt,
	}
}

func (t *Transaction) ID() uuid.UUID           { return t.id }
func (t *Transaction) StatementID() uuid.UUID  { return t.statementID }
func (t *Transaction) ExternalID() string      { return t.externalID }
func (t *Transaction) Amount() decimal.Decimal { return t.amount }
func (t *Transaction) Currency() string        { return t.currency }
func (t *Transaction) Outcome() Outcome        { return t.outcome }
func (t *Transaction) Reason() *string         { return t.reason }
func (t *Transaction) CreatedAt() time.Time    { return t.createdAt }
