package billing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownModel      = errors.New("unknown commission model")
	ErrNegativeRate      = errors.New("commission rate cannot be negative")
	ErrNegativeLimit     = errors.New("per-period limit cannot be negative")
	ErrNegativeEligible  = errors.New("eligible count cannot be negative")
	ErrEmptyCurrency     = errors.New("currency cannot be empty")
	ErrMissingFxRate     = errors.New("usd_auto pricing requires an fx rate")
	ErrNonPositiveFxRate = errors.New("fx rate must be positive")
)

// Model selects how commission is charged per billable reservation.
type Model string

const (
	// ModelFixedLocal charges a flat rate in the resource's local currency.
	ModelFixedLocal Model = "fixed_local"
	// ModelUSDAuto charges a USD rate converted into the target currency
	// at a snapshot rate taken when the statement is generated.
	ModelUSDAuto Model = "usd_auto"
)

func (m Model) String() string { return string(m) }

func (m Model) IsValid() bool {
	switch m {
	case ModelFixedLocal, ModelUSDAuto:
		return true
	default:
		return false
	}
}

// Pricing is a resource's commission configuration, carried as one tagged
// value rather than scattered flags so quoting stays pure per variant.
type Pricing struct {
	Model    Model
	Rate     decimal.Decimal
	Currency string
	Limit    int
}

func NewPricing(model Model, rate decimal.Decimal, currency string, limit int) (Pricing, error) {
	if !model.IsValid() {
		return Pricing{}, ErrUnknownModel
	}
	if rate.IsNegative() {
		return Pricing{}, ErrNegativeRate
	}
	if currency == "" {
		return Pricing{}, ErrEmptyCurrency
	}
	if limit < 0 {
		return Pricing{}, ErrNegativeLimit
	}
	return Pricing{Model: model, Rate: rate, Currency: currency, Limit: limit}, nil
}

// Quote is the billable outcome for one resource and period. FxRate is set
// only for usd_auto and records the snapshot used, to be frozen into the
// statement.
type Quote struct {
	BillableCount int
	Amount        decimal.Decimal
	Currency      string
	FxRate        *decimal.Decimal
}

// NewQuote counts commission for eligible reservations under a pricing
// configuration. The limit is a hard ceiling: reservations beyond it add
// zero commission, never prorated.
func NewQuote(eligible int, pricing Pricing, fxRate *decimal.Decimal) (Quote, error) {
	if eligible < 0 {
		return Quote{}, ErrNegativeEligible
	}
	if !pricing.Model.IsValid() {
		return Quote{}, ErrUnknownModel
	}

	billable := eligible
	if billable > pricing.Limit {
		billable = pricing.Limit
	}
	count := decimal.NewFromInt(int64(billable))

	switch pricing.Model {
	case ModelFixedLocal:
		return Quote{
			BillableCount: billable,
			Amount:        count.Mul(pricing.Rate),
			Currency:      pricing.Currency,
		}, nil

	case ModelUSDAuto:
		if fxRate == nil {
			return Quote{}, ErrMissingFxRate
		}
		if !fxRate.IsPositive() {
			return Quote{}, ErrNonPositiveFxRate
		}
		rate := *fxRate
		return Quote{
			BillableCount: billable,
			Amount:        count.Mul(pricing.Rate).Mul(rate),
			Currency:      pricing.Currency,
			FxRate:        &rate,
		}, nil

	default:
		return Quote{}, ErrUnknownModel
	}
}

// PercentOfLimit reports how much of the per-period cap the eligible count
// consumes, for the billable-summary view.
func PercentOfLimit(eligible, limit int) float64 {
	if limit <= 0 {
		return 0
	}
	billable := eligible
	if billable > limit {
		billable = limit
	}
	return float64(billable) / float64(limit) * 100.0
}
