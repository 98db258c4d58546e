package repository

import (
	"context"

	"booking-billing/internal/domain/statement"
	"booking-billing/internal/infra"
	"booking-billing/internal/infra/db"
	"booking-billing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TransactionRepository struct {
	db db.DBTX
}

func NewTransactionRepository(db db.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Record appends one payment attempt. A partial unique index allows at most
// one success per statement, so a duplicated confirmation surfaces as
// KindDuplicateKey instead of double-applying.
func (r *TransactionRepository) Record(ctx context.Context, t *statement.Transaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payment_transactions (id, statement_id, external_id, amount, currency, outcome, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID(),
		t.StatementID(),
		t.ExternalID(),
		pgconv.NumericFromDecimal(t.Amount()),
		t.Currency(),
		t.Outcome().String(),
		pgconv.StringPtrToPgtype(t.Reason()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record payment transaction", err)
	}
	return nil
}

func (r *TransactionRepository) ListByStatement(ctx context.Context, statementID uuid.UUID) ([]*statement.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, statement_id, external_id, amount, currency, outcome, reason, created_at
		FROM payment_transactions
		WHERE statement_id = $1
		ORDER BY created_at`, statementID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment transactions", err)
	}
	defer rows.Close()

	var result []*statement.Transaction
	for rows.Next() {
		var (
			id, stID   uuid.UUID
			externalID string
			amount     pgtype.Numeric
			currency   string
			outcome    string
			reason     pgtype.Text
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &stID, &externalID, &amount, &currency, &outcome, &reason, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment transaction", err)
		}
		amountDec, err := pgconv.DecimalFromNumeric(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert transaction amount", err)
		}
		result = append(result, statement.ReconstructTransaction(
			id, stID, externalID, amountDec, currency,
			statement.Outcome(outcome),
			pgconv.StringPtrFromPgtype(reason),
			createdAt.Time,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment transactions", err)
	}
	return result, nil
}
