//go:build unit

package clock_test

import (
	"testing"
	"time"

	"booking-billing/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	mock := clock.NewMockClock(time.Date(2025, 3, 15, 23, 45, 12, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), clock.Today(mock))

	t.Run("non-UTC wall time normalizes to the UTC date", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		mock.Set(time.Date(2025, 3, 16, 3, 0, 0, 0, jst)) // 2025-03-15 18:00 UTC

		assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), clock.Today(mock))
	})

	t.Run("advancing past midnight moves the date", func(t *testing.T) {
		mock.Set(time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC))
		mock.Add(2 * time.Minute)

		assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), clock.Today(mock))
	})
}
