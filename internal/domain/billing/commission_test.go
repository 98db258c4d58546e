//go:build unit

package billing_test

import (
	"testing"

	"booking-billing/internal/domain/billing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPricing(t *testing.T) {
	cases := []struct {
		name     string
		model    billing.Model
		rate     decimal.Decimal
		currency string
		limit    int
		errIs    error
	}{
		{name: "fixed local", model: billing.ModelFixedLocal, rate: decimal.NewFromInt(1500), currency: "JPY", limit: 100},
		{name: "usd auto", model: billing.ModelUSDAuto, rate: decimal.NewFromFloat(1.00), currency: "JPY", limit: 50},
		{name: "unknown model", model: billing.Model("percentage"), rate: decimal.NewFromInt(10), currency: "JPY", limit: 100, errIs: billing.ErrUnknownModel},
		{name: "negative rate", model: billing.ModelFixedLocal, rate: decimal.NewFromInt(-1), currency: "JPY", limit: 100, errIs: billing.ErrNegativeRate},
		{name: "empty currency", model: billing.ModelFixedLocal, rate: decimal.NewFromInt(1500), currency: "", limit: 100, errIs: billing.ErrEmptyCurrency},
		{name: "negative limit", model: billing.ModelFixedLocal, rate: decimal.NewFromInt(1500), currency: "JPY", limit: -1, errIs: billing.ErrNegativeLimit},
		{name: "zero rate is allowed", model: billing.ModelFixedLocal, rate: decimal.Zero, currency: "JPY", limit: 100},
		{name: "zero limit is allowed", model: billing.ModelFixedLocal, rate: decimal.NewFromInt(1500), currency: "JPY", limit: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := billing.NewPricing(c.model, c.rate, c.currency, c.limit)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewQuote(t *testing.T) {
	t.Run("fixed local charges rate per billable reservation", func(t *testing.T) {
		pricing := billing.Pricing{
			Model:    billing.ModelFixedLocal,
			Rate:     decimal.NewFromInt(1500),
			Currency: "JPY",
			Limit:    100,
		}

		quote, err := billing.NewQuote(130, pricing, nil)
		require.NoError(t, err)

		assert.Equal(t, 100, quote.BillableCount)
		assert.True(t, quote.Amount.Equal(decimal.NewFromInt(150000)), "got %s", quote.Amount)
		assert.Equal(t, "JPY", quote.Currency)
		assert.Nil(t, quote.FxRate)
	})

	t.Run("usd auto converts through the snapshot rate", func(t *testing.T) {
		pricing := billing.Pricing{
			Model:    billing.ModelUSDAuto,
			Rate:     decimal.NewFromFloat(1.00),
			Currency: "JPY",
			Limit:    100,
		}
		fx := decimal.NewFromInt(540)

		quote, err := billing.NewQuote(50, pricing, &fx)
		require.NoError(t, err)

		assert.Equal(t, 50, quote.BillableCount)
		assert.True(t, quote.Amount.Equal(decimal.NewFromInt(27000)), "got %s", quote.Amount)
		require.NotNil(t, quote.FxRate)
		assert.True(t, quote.FxRate.Equal(fx))
	})

	t.Run("quote keeps its own copy of the fx rate", func(t *testing.T) {
		pricing := billing.Pricing{
			Model:    billing.ModelUSDAuto,
			Rate:     decimal.NewFromFloat(1.00),
			Currency: "JPY",
			Limit:    100,
		}
		fx := decimal.NewFromInt(150)

		quote, err := billing.NewQuote(10, pricing, &fx)
		require.NoError(t, err)

		fx = decimal.NewFromInt(999)
		assert.True(t, quote.FxRate.Equal(decimal.NewFromInt(150)))
	})

	t.Run("eligible below limit is billed in full", func(t *testing.T) {
		pricing := billing.Pricing{
			Model:    billing.ModelFixedLocal,
			Rate:     decimal.NewFromInt(1500),
			Currency: "JPY",
			Limit:    100,
		}

		quote, err := billing.NewQuote(40, pricing, nil)
		require.NoError(t, err)

		assert.Equal(t, 40, quote.BillableCount)
		assert.True(t, quote.Amount.Equal(decimal.NewFromInt(60000)))
	})

	t.Run("the cap boundary bills limit-1, limit and limit+1 the same way", func(t *testing.T) {
		pricing := billing.Pricing{
			Model:    billing.ModelFixedLocal,
			Rate:     decimal.NewFromInt(1500),
			Currency: "JPY",
			Limit:    100,
		}

		for eligible, expected := range map[int]int{99: 99, 100: 100, 101: 100} {
			quote, err := billing.NewQuote(eligible, pricing, nil)
			require.NoError(t, err)
			assert.Equal(t, expected, quote.BillableCount, "eligible=%d", eligible)
		}
	})

	t.Run("zero eligible yields a zero statement", func(t *testing.T) {
		pricing := billing.Pricing{
			Model:    billing.ModelFixedLocal,
			Rate:     decimal.NewFromInt(1500),
			Currency: "JPY",
			Limit:    100,
		}

		quote, err := billing.NewQuote(0, pricing, nil)
		require.NoError(t, err)

		assert.Equal(t, 0, quote.BillableCount)
		assert.True(t, quote.Amount.IsZero())
	})

	t.Run("validation", func(t *testing.T) {
		fixedLocal := billing.Pricing{Model: billing.ModelFixedLocal, Rate: decimal.NewFromInt(1500), Currency: "JPY", Limit: 100}
		usdAuto := billing.Pricing{Model: billing.ModelUSDAuto, Rate: decimal.NewFromFloat(1.00), Currency: "JPY", Limit: 100}
		zero := decimal.Zero
		negative := decimal.NewFromInt(-1)

		cases := []struct {
			name     string
			eligible int
			pricing  billing.Pricing
			fxRate   *decimal.Decimal
			errIs    error
		}{
			{name: "negative eligible", eligible: -1, pricing: fixedLocal, errIs: billing.ErrNegativeEligible},
			{name: "unknown model", eligible: 10, pricing: billing.Pricing{Model: billing.Model("bogus")}, errIs: billing.ErrUnknownModel},
			{name: "usd auto without fx rate", eligible: 10, pricing: usdAuto, errIs: billing.ErrMissingFxRate},
			{name: "usd auto with zero fx rate", eligible: 10, pricing: usdAuto, fxRate: &zero, errIs: billing.ErrNonPositiveFxRate},
			{name: "usd auto with negative fx rate", eligible: 10, pricing: usdAuto, fxRate: &negative, errIs: billing.ErrNonPositiveFxRate},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := billing.NewQuote(c.eligible, c.pricing, c.fxRate)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestPercentOfLimit(t *testing.T) {
	assert.InDelta(t, 40.0, billing.PercentOfLimit(40, 100), 0.001)
	assert.InDelta(t, 100.0, billing.PercentOfLimit(100, 100), 0.001)
	assert.InDelta(t, 100.0, billing.PercentOfLimit(130, 100), 0.001, "billable is capped at the limit")
	assert.InDelta(t, 0.0, billing.PercentOfLimit(0, 100), 0.001)
	assert.InDelta(t, 0.0, billing.PercentOfLimit(10, 0), 0.001, "zero limit never divides")
}
