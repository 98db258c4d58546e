//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type ResourceRow struct {
	Name         string
	Active       bool
	Model        string
	Rate         decimal.Decimal
	Currency     string
	MonthlyLimit int
	AnchorDay    int
}

func DefaultResourceRow() ResourceRow {
	return ResourceRow{
		Name:         "Studio A",
		Active:       true,
		Model:        "fixed_local",
		Rate:         decimal.NewFromInt(1500),
		Currency:     "JPY",
		MonthlyLimit: 100,
		AnchorDay:    1,
	}
}

func CreateTestResource(t *testing.T, db DBLike, row ResourceRow) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO resources (id, name, active, commission_model, commission_rate, currency, monthly_limit, anchor_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, row.Name, row.Active, row.Model, row.Rate, row.Currency, row.MonthlyLimit, row.AnchorDay)
	require.NoError(t, err)

	return id
}

func CreateTestReservation(t *testing.T, db DBLike, resourceID uuid.UUID, day time.Time, slot, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, resource_id, day, slot, status, price)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, resourceID, day, slot, status, decimal.NewFromInt(8000))
	require.NoError(t, err)

	return id
}

func SetFxRate(t *testing.T, db DBLike, currency string, rate decimal.Decimal) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO fx_rates (currency, rate) VALUES ($1, $2)
		ON CONFLICT (currency) DO UPDATE SET rate = EXCLUDED.rate, updated_at = now()`,
		currency, rate)
	require.NoError(t, err)
}

// BackdateStatement pushes a statement's due date into the past so sweep
// tests do not have to wait out a real grace window.
func BackdateStatement(t *testing.T, db DBLike, statementID uuid.UUID, dueDate time.Time) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "UPDATE statements SET due_date = $2 WHERE id = $1", statementID, dueDate)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO fx_rates (currency, rate) VALUES
		    ('JPY', 150.0),
		    ('EUR', 0.92)
		ON CONFLICT (currency) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
