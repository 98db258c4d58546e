//go:build unit

package resource_test

import (
	"strings"
	"testing"
	"time"

	"booking-billing/internal/domain/billing"
	"booking-billing/internal/domain/resource"
	"booking-billing/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResource(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		res, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, res)

		assert.Equal(t, "Studio A", res.Name())
		assert.True(t, res.Active())
		assert.Equal(t, billing.ModelFixedLocal, res.Pricing().Model)
		assert.Equal(t, 1, res.AnchorDay())
	})

	t.Run("name validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ResourceBuilder)
			errIs  error
		}{
			{
				name:   "empty name",
				mutate: func(b *builder.ResourceBuilder) { b.WithName("") },
				errIs:  resource.ErrEmptyResourceName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.ResourceBuilder) { b.WithName("   ") },
				errIs:  resource.ErrEmptyResourceName,
			},
			{
				name:   "maximum length name",
				mutate: func(b *builder.ResourceBuilder) { b.WithName(strings.Repeat("a", resource.MaxResourceNameLength)) },
			},
			{
				name:   "name exceeds maximum length",
				mutate: func(b *builder.ResourceBuilder) { b.WithName(strings.Repeat("a", resource.MaxResourceNameLength+1)) },
				errIs:  resource.ErrResourceNameTooLong,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := builder.NewResourceBuilder().With(c.mutate).BuildDomain()
				if c.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("anchor day out of range", func(t *testing.T) {
		_, err := builder.NewResourceBuilder().WithAnchorDay(29).BuildDomain()
		require.ErrorIs(t, err, billing.ErrInvalidAnchorDay)

		_, err = builder.NewResourceBuilder().WithAnchorDay(0).BuildDomain()
		require.ErrorIs(t, err, billing.ErrInvalidAnchorDay)
	})
}

func TestResourceActivation(t *testing.T) {
	t.Run("deactivate then reactivate", func(t *testing.T) {
		res, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Deactivate())
		assert.False(t, res.Active())

		require.NoError(t, res.Activate())
		assert.True(t, res.Active())
	})

	t.Run("deactivating an inactive resource fails", func(t *testing.T) {
		res, err := builder.NewResourceBuilder().WithActive(false).BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, res.Deactivate(), resource.ErrAlreadyInactive)
	})

	t.Run("activating an active resource fails", func(t *testing.T) {
		res, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, res.Activate(), resource.ErrAlreadyActive)
	})
}

func TestResourceCurrentPeriod(t *testing.T) {
	res, err := builder.NewResourceBuilder().WithAnchorDay(28).BuildDomain()
	require.NoError(t, err)

	period, err := res.CurrentPeriod(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), period.Start())
	assert.Equal(t, time.Date(2025, 3, 27, 0, 0, 0, 0, time.UTC), period.End())
}
