//go:build unit

package billing_test

import (
	"testing"
	"time"

	"booking-billing/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodFor(t *testing.T) {
	t.Run("reference after anchor falls into the current month's window", func(t *testing.T) {
		p, err := billing.PeriodFor(date(2025, 3, 15), 1)
		require.NoError(t, err)

		assert.Equal(t, date(2025, 3, 1), p.Start())
		assert.Equal(t, date(2025, 3, 31), p.End())
	})

	t.Run("reference before anchor falls into the previous month's window", func(t *testing.T) {
		p, err := billing.PeriodFor(date(2025, 3, 15), 28)
		require.NoError(t, err)

		assert.Equal(t, date(2025, 2, 28), p.Start())
		assert.Equal(t, date(2025, 3, 27), p.End())
	})

	t.Run("anchor day itself starts a new window", func(t *testing.T) {
		p, err := billing.PeriodFor(date(2025, 3, 28), 28)
		require.NoError(t, err)

		assert.Equal(t, date(2025, 3, 28), p.Start())
		assert.Equal(t, date(2025, 4, 27), p.End())
	})

	t.Run("time of day and zone do not shift the window", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*3600)
		ref := time.Date(2025, 3, 15, 23, 45, 0, 0, jst)

		p, err := billing.PeriodFor(ref, 1)
		require.NoError(t, err)
		assert.Equal(t, date(2025, 3, 1), p.Start())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name      string
			ref       time.Time
			anchorDay int
			errIs     error
		}{
			{name: "anchor day zero", ref: date(2025, 3, 15), anchorDay: 0, errIs: billing.ErrInvalidAnchorDay},
			{name: "anchor day 29", ref: date(2025, 3, 15), anchorDay: 29, errIs: billing.ErrInvalidAnchorDay},
			{name: "anchor day negative", ref: date(2025, 3, 15), anchorDay: -1, errIs: billing.ErrInvalidAnchorDay},
			{name: "zero reference", ref: time.Time{}, anchorDay: 1, errIs: billing.ErrZeroReference},
			{name: "minimum anchor day", ref: date(2025, 3, 15), anchorDay: 1},
			{name: "maximum anchor day", ref: date(2025, 3, 15), anchorDay: 28},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := billing.PeriodFor(c.ref, c.anchorDay)
				if c.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})
}

func TestPeriodTiling(t *testing.T) {
	// Consecutive windows for the same anchor must cover every day exactly
	// once, including February and leap years.
	anchors := []int{1, 15, 28}
	for _, anchor := range anchors {
		p, err := billing.PeriodFor(date(2023, 12, 28), anchor)
		require.NoError(t, err)

		for range 30 {
			next, err := p.Next(anchor)
			require.NoError(t, err)

			assert.Equal(t, p.End().AddDate(0, 0, 1), next.Start(),
				"gap or overlap between %s and %s (anchor %d)", p, next, anchor)
			assert.True(t, p.End().After(p.Start()), "degenerate window %s", p)
			p = next
		}
	}
}

func TestPeriodContains(t *testing.T) {
	p, err := billing.PeriodFor(date(2025, 3, 15), 28)
	require.NoError(t, err)

	assert.True(t, p.Contains(date(2025, 2, 28)))
	assert.True(t, p.Contains(date(2025, 3, 27)))
	assert.True(t, p.Contains(date(2025, 3, 15)))
	assert.False(t, p.Contains(date(2025, 2, 27)))
	assert.False(t, p.Contains(date(2025, 3, 28)))
}

func TestPeriodDueDate(t *testing.T) {
	p, err := billing.PeriodFor(date(2025, 3, 15), 1)
	require.NoError(t, err)

	assert.Equal(t, date(2025, 4, 5), p.DueDate(5))
	assert.Equal(t, date(2025, 3, 31), p.DueDate(0))
}

func TestReconstructPeriod(t *testing.T) {
	p := billing.ReconstructPeriod(date(2025, 2, 28), date(2025, 3, 27))

	assert.Equal(t, date(2025, 2, 28), p.Start())
	assert.Equal(t, date(2025, 3, 27), p.End())
	assert.Equal(t, "2025-02-28..2025-03-27", p.String())
}
