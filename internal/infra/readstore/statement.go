package readstore

import (
	"context"

	"booking-billing/internal/infra"
	"booking-billing/internal/infra/db"
	"booking-billing/internal/pkg/pgconv"
	"booking-billing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StatementReadStore struct {
	db db.DBTX
}

func NewStatementReadStore(db db.DBTX) *StatementReadStore {
	return &StatementReadStore{db: db}
}

func (s *StatementReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StatementView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT s.id, s.resource_id, r.name, s.period_start, s.period_end, s.billable_count,
			s.amount, s.currency, s.fx_rate, s.due_date, s.status, s.paid_at, s.transaction_id,
			s.enforced_at, s.idempotency_key, s.created_at, s.updated_at
		FROM statements s
		JOIN resources r ON r.id = s.resource_id
		WHERE s.id = $1`, id)

	var (
		view           queries.StatementView
		periodStart    pgtype.Date
		periodEnd      pgtype.Date
		billableCount  int32
		amount, fxRate pgtype.Numeric
		dueDate        pgtype.Date
		paidAt         pgtype.Timestamptz
		transactionID  pgtype.UUID
		enforcedAt     pgtype.Timestamptz
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.ResourceID, &view.ResourceName, &periodStart, &periodEnd, &billableCount,
		&amount, &view.Currency, &fxRate, &dueDate, &view.Status, &paidAt, &transactionID,
		&enforcedAt, &view.IdempotencyKey, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("statement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find statement view", err)
	}

	view.PeriodStart = periodStart.Time
	view.PeriodEnd = periodEnd.Time
	view.BillableCount = int(billableCount)
	view.DueDate = dueDate.Time
	view.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	view.TransactionID = pgconv.UUIDPtrFromPgtype(transactionID)
	view.EnforcedAt = pgconv.TimePtrFromPgtype(enforcedAt)
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time

	if view.Amount, err = pgconv.DecimalFromNumeric(amount); err != nil {
		return nil, infra.WrapRepoErr("failed to convert statement amount", err)
	}
	if view.FxRate, err = pgconv.DecimalPtrFromNumeric(fxRate); err != nil {
		return nil, infra.WrapRepoErr("failed to convert statement fx rate", err)
	}
	return &view, nil
}

func (s *StatementReadStore) FindByResource(ctx context.Context, resourceID uuid.UUID, status *string) ([]*queries.StatementListItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, resource_id, period_start, period_end, billable_count, amount, currency,
			due_date, status, created_at
		FROM statements
		WHERE resource_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY period_start DESC`,
		resourceID, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list statement views", err)
	}
	defer rows.Close()

	var result []*queries.StatementListItem
	for rows.Next() {
		var (
			item          queries.StatementListItem
			periodStart   pgtype.Date
			periodEnd     pgtype.Date
			billableCount int32
			amount        pgtype.Numeric
			dueDate       pgtype.Date
			createdAt     pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.ResourceID, &periodStart, &periodEnd, &billableCount,
			&amount, &item.Currency, &dueDate, &item.Status, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan statement view", err)
		}
		item.PeriodStart = periodStart.Time
		item.PeriodEnd = periodEnd.Time
		item.BillableCount = int(billableCount)
		item.DueDate = dueDate.Time
		item.CreatedAt = createdAt.Time
		if item.Amount, err = pgconv.DecimalFromNumeric(amount); err != nil {
			return nil, infra.WrapRepoErr("failed to convert statement amount", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate statement views", err)
	}
	return result, nil
}

func (s *StatementReadStore) FindTransactions(ctx context.Context, statementID uuid.UUID) ([]*queries.TransactionView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, statement_id, external_id, amount, currency, outcome, reason, created_at
		FROM payment_transactions
		WHERE statement_id = $1
		ORDER BY created_at`, statementID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transaction views", err)
	}
	defer rows.Close()

	var result []*queries.TransactionView
	for rows.Next() {
		var (
			view      queries.TransactionView
			amount    pgtype.Numeric
			reason    pgtype.Text
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.StatementID, &view.ExternalID, &amount, &view.Currency,
			&view.Outcome, &reason, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction view", err)
		}
		view.Reason = pgconv.StringPtrFromPgtype(reason)
		view.CreatedAt = createdAt.Time
		if view.Amount, err = pgconv.DecimalFromNumeric(amount); err != nil {
			return nil, infra.WrapRepoErr("failed to convert transaction amount", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transaction views", err)
	}
	return result, nil
}
