package repository

import (
	"context"
	"time"

	"booking-billing/internal/domain/billing"
	"booking-billing/internal/domain/statement"
	"booking-billing/internal/infra"
	"booking-billing/internal/infra/db"
	"booking-billing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const statementColumns = `id, resource_id, period_start, period_end, billable_count, amount, currency,
	fx_rate, due_date, status, paid_at, transaction_id, enforced_at, idempotency_key, created_at, updated_at`

type StatementRepository struct {
	db db.DBTX
}

func NewStatementRepository(db db.DBTX) *StatementRepository {
	return &StatementRepository{db: db}
}

func (r *StatementRepository) Insert(ctx context.Context, st *statement.Statement) (bool, error) {
	quote := st.Quote()
	tag, err := r.db.Exec(ctx, `
		INSERT INTO statements (
			id, resource_id, period_start, period_end, billable_count, amount, currency,
			fx_rate, due_date, status, idempotency_key
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (resource_id, period_start) DO NOTHING`,
		st.ID(),
		st.ResourceID(),
		pgconv.DateToPgtype(st.Period().Start()),
		pgconv.DateToPgtype(st.Period().End()),
		int32(quote.BillableCount),
		pgconv.NumericFromDecimal(quote.Amount),
		quote.Currency,
		pgconv.NumericPtrFromDecimal(quote.FxRate),
		pgconv.DateToPgtype(st.DueDate()),
		st.Status().String(),
		st.IdempotencyKey(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert statement", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *StatementRepository) FindByID(ctx context.Context, id uuid.UUID) (*statement.Statement, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+statementColumns+` FROM statements WHERE id = $1`, id)
	st, err := scanStatement(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("statement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find statement by ID", err)
	}
	return st, nil
}

func (r *StatementRepository) FindByResourcePeriod(ctx context.Context, resourceID uuid.UUID, periodStart time.Time) (*statement.Statement, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+statementColumns+` FROM statements WHERE resource_id = $1 AND period_start = $2`,
		resourceID, pgconv.DateToPgtype(periodStart))
	st, err := scanStatement(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("statement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find statement by resource and period", err)
	}
	return st, nil
}

func (r *StatementRepository) FindByIdempotencyKey(ctx context.Context, key uuid.UUID) (*statement.Statement, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+statementColumns+` FROM statements WHERE idempotency_key = $1`, key)
	st, err := scanStatement(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("statement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find statement by idempotency key", err)
	}
	return st, nil
}

// BeginPayment is the arbitration point for racing payment attempts: the
// conditional update succeeds for exactly one caller.
func (r *StatementRepository) BeginPayment(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE statements SET status = 'processing', updated_at = now()
		WHERE id = $1 AND status IN ('pending', 'failed')`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to begin payment", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *StatementRepository) CompletePayment(ctx context.Context, id, transactionID uuid.UUID, paidAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE statements
		SET status = 'paid', paid_at = $2, transaction_id = $3, updated_at = now()
		WHERE id = $1 AND status = 'processing'`,
		id, pgconv.TimeToPgtype(paidAt), transactionID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete payment", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *StatementRepository) FailPayment(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE statements SET status = 'failed', updated_at = now()
		WHERE id = $1 AND status = 'processing'`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to fail payment", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *StatementRepository) MarkEnforced(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE statements SET enforced_at = $2, updated_at = now()
		WHERE id = $1 AND enforced_at IS NULL`,
		id, pgconv.TimeToPgtype(at))
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark statement enforced", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *StatementRepository) ListOverdueUnenforced(ctx context.Context, asOf time.Time) ([]*statement.Statement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+statementColumns+`
		FROM statements
		WHERE status = 'pending' AND due_date < $1 AND enforced_at IS NULL
		ORDER BY due_date, created_at`,
		pgconv.DateToPgtype(asOf))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue statements", err)
	}
	defer rows.Close()

	var result []*statement.Statement
	for rows.Next() {
		st, err := scanStatement(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan overdue statement", err)
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate overdue statements", err)
	}
	return result, nil
}

func (r *StatementRepository) CountUnpaidEnforced(ctx context.Context, resourceID uuid.UUID) (int, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM statements
		WHERE resource_id = $1 AND enforced_at IS NOT NULL AND status <> 'paid'`,
		resourceID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unpaid enforced statements", err)
	}
	return int(count), nil
}

func scanStatement(row pgx.Row) (*statement.Statement, error) {
	var (
		id, resourceID         uuid.UUID
		periodStart, periodEnd pgtype.Date
		billableCount          int32
		amount, fxRate         pgtype.Numeric
		currency, status       string
		dueDate                pgtype.Date
		paidAt, enforcedAt     pgtype.Timestamptz
		transactionID          pgtype.UUID
		idempotencyKey         uuid.UUID
		createdAt, updatedAt   pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &resourceID, &periodStart, &periodEnd, &billableCount, &amount, &currency,
		&fxRate, &dueDate, &status, &paidAt, &transactionID, &enforcedAt, &idempotencyKey,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	amountDec, err := pgconv.DecimalFromNumeric(amount)
	if err != nil {
		return nil, err
	}
	fxDec, err := pgconv.DecimalPtrFromNumeric(fxRate)
	if err != nil {
		return nil, err
	}

	return statement.ReconstructStatement(
		id, resourceID,
		billing.ReconstructPeriod(periodStart.Time, periodEnd.Time),
		billing.Quote{
			BillableCount: int(billableCount),
			Amount:        amountDec,
			Currency:      currency,
			FxRate:        fxDec,
		},
		dueDate.Time,
		statement.Status(status),
		pgconv.TimePtrFromPgtype(paidAt),
		pgconv.UUIDPtrFromPgtype(transactionID),
		pgconv.TimePtrFromPgtype(enforcedAt),
		idempotencyKey,
		createdAt.Time, updatedAt.Time,
	), nil
}
