//go:build unit || e2e

package builder

import (
	"time"

	"booking-billing/internal/domain/billing"
	domstatement "booking-billing/internal/domain/statement"
	reqdto "booking-billing/internal/handler/dto/request"
	"booking-billing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StatementBuilder struct {
	ResourceID    uuid.UUID
	ResourceName  string
	AnchorDay     int
	Ref           time.Time
	EligibleCount int
	Rate          decimal.Decimal
	Currency      string
	Limit         int
	FxRate        *decimal.Decimal
	GraceDays     int
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewStatementBuilder() *StatementBuilder {
	now := time.Now().UTC()
	return &StatementBuilder{
		ResourceID:    uuid.New(),
		ResourceName:  "Studio A",
		AnchorDay:     1,
		Ref:           time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		EligibleCount: 40,
		Rate:          decimal.NewFromInt(1500),
		Currency:      "JPY",
		Limit:         100,
		GraceDays:     5,
		Status:        "pending",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *StatementBuilder) With(mutate func(*StatementBuilder)) *StatementBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *StatementBuilder) BuildDomain() (*domstatement.Statement, error) {
	period, err := billing.PeriodFor(b.Ref, b.AnchorDay)
	if err != nil {
		return nil, err
	}
	pricing := billing.Pricing{
		Model:    billing.ModelFixedLocal,
		Rate:     b.Rate,
		Currency: b.Currency,
		Limit:    b.Limit,
	}
	if b.FxRate != nil {
		pricing.Model = billing.ModelUSDAuto
	}
	quote, err := billing.NewQuote(b.EligibleCount, pricing, b.FxRate)
	if err != nil {
		return nil, err
	}
	return domstatement.NewStatement(b.ResourceID, period, quote, b.GraceDays)
}

func (b *StatementBuilder) BuildGenerateRequestDTO() reqdto.GenerateStatementRequest {
	return reqdto.GenerateStatementRequest{
		Ref: b.Ref.Format(time.DateOnly),
	}
}

func (b *StatementBuilder) BuildView() *queries.StatementView {
	period, _ := billing.PeriodFor(b.Ref, b.AnchorDay)
	billable := b.EligibleCount
	if billable > b.Limit {
		billable = b.Limit
	}
	amount := decimal.NewFromInt(int64(billable)).Mul(b.Rate)
	if b.FxRate != nil {
		amount = amount.Mul(*b.FxRate)
	}
	return &queries.StatementView{
		ID:             uuid.New(),
		ResourceID:     b.ResourceID,
		ResourceName:   b.ResourceName,
		PeriodStart:    period.Start(),
		PeriodEnd:      period.End(),
		BillableCount:  billable,
		Amount:         amount,
		Currency:       b.Currency,
		FxRate:         b.FxRate,
		DueDate:        period.DueDate(b.GraceDays),
		Status:         b.Status,
		IdempotencyKey: uuid.New(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *StatementBuilder) BuildListItem() *queries.StatementListItem {
	period, _ := billing.PeriodFor(b.Ref, b.AnchorDay)
	billable := b.EligibleCount
	if billable > b.Limit {
		billable = b.Limit
	}
	return &queries.StatementListItem{
		ID:            uuid.New(),
		ResourceID:    b.ResourceID,
		PeriodStart:   period.Start(),
		PeriodEnd:     period.End(),
		BillableCount: billable,
		Amount:        decimal.NewFromInt(int64(billable)).Mul(b.Rate),
		Currency:      b.Currency,
		DueDate:       period.DueDate(b.GraceDays),
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *StatementBuilder) BuildTransactionView(outcome string) *queries.TransactionView {
	externalID := "ch_test_12345678"
	if outcome != "success" {
		externalID = ""
	}
	return &queries.TransactionView{
		ID:          uuid.New(),
		StatementID: uuid.New(),
		ExternalID:  externalID,
		Amount:      decimal.NewFromInt(int64(b.EligibleCount)).Mul(b.Rate),
		Currency:    b.Currency,
		Outcome:     outcome,
		CreatedAt:   b.CreatedAt,
	}
}

// Fluent builder methods
func (b *StatementBuilder) WithResourceID(id uuid.UUID) *StatementBuilder {
	b.ResourceID = id
	return b
}

func (b *StatementBuilder) WithAnchorDay(day int) *StatementBuilder {
	b.AnchorDay = day
	return b
}

func (b *StatementBuilder) WithRef(ref time.Time) *StatementBuilder {
	b.Ref = ref
	return b
}

func (b *StatementBuilder) WithEligibleCount(n int) *StatementBuilder {
	b.EligibleCount = n
	return b
}

func (b *StatementBuilder) WithRate(rate decimal.Decimal) *StatementBuilder {
	b.Rate = rate
	return b
}

func (b *StatementBuilder) WithCurrency(currency string) *StatementBuilder {
	b.Currency = currency
	return b
}

func (b *StatementBuilder) WithLimit(limit int) *StatementBuilder {
	b.Limit = limit
	return b
}

func (b *StatementBuilder) WithFxRate(rate decimal.Decimal) *StatementBuilder {
	b.FxRate = &rate
	return b
}

func (b *StatementBuilder) WithStatus(status string) *StatementBuilder {
	b.Status = status
	return b
}
