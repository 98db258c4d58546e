//go:build unit || e2e

package builder

import (
	"booking-billing/internal/domain/billing"
	domresource "booking-billing/internal/domain/resource"
	"booking-billing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ResourceBuilder struct {
	ID        uuid.UUID
	Name      string
	Active    bool
	Model     billing.Model
	Rate      decimal.Decimal
	Currency  string
	Limit     int
	AnchorDay int
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:        uuid.New(),
		Name:      "Studio A",
		Active:    true,
		Model:     billing.ModelFixedLocal,
		Rate:      decimal.NewFromInt(1500),
		Currency:  "JPY",
		Limit:     100,
		AnchorDay: 1,
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ResourceBuilder) BuildDomain() (*domresource.Resource, error) {
	pricing, err := billing.NewPricing(b.Model, b.Rate, b.Currency, b.Limit)
	if err != nil {
		return nil, err
	}
	return domresource.NewResource(b.ID, b.Name, b.Active, pricing, b.AnchorDay)
}

func (b *ResourceBuilder) BuildPricingView() *queries.ResourcePricingView {
	return &queries.ResourcePricingView{
		ID:        b.ID,
		Name:      b.Name,
		Active:    b.Active,
		Model:     b.Model.String(),
		Rate:      b.Rate,
		Currency:  b.Currency,
		Limit:     b.Limit,
		AnchorDay: b.AnchorDay,
	}
}

// Fluent builder methods
func (b *ResourceBuilder) WithID(id uuid.UUID) *ResourceBuilder {
	b.ID = id
	return b
}

func (b *ResourceBuilder) WithName(name string) *ResourceBuilder {
	b.Name = name
	return b
}

func (b *ResourceBuilder) WithActive(active bool) *ResourceBuilder {
	b.Active = active
	return b
}

func (b *ResourceBuilder) WithModel(model billing.Model) *ResourceBuilder {
	b.Model = model
	return b
}

func (b *ResourceBuilder) WithRate(rate decimal.Decimal) *ResourceBuilder {
	b.Rate = rate
	return b
}

func (b *ResourceBuilder) WithCurrency(currency string) *ResourceBuilder {
	b.Currency = currency
	return b
}

func (b *ResourceBuilder) WithLimit(limit int) *ResourceBuilder {
	b.Limit = limit
	return b
}

func (b *ResourceBuilder) WithAnchorDay(day int) *ResourceBuilder {
	b.AnchorDay = day
	return b
}

func (b *ResourceBuilder) AsUSDAuto() *ResourceBuilder {
	b.Model = billing.ModelUSDAuto
	b.Rate = decimal.NewFromFloat(1.00)
	return b
}
