package queries

import (
	"context"
	"time"

	"booking-billing/internal/domain/statement"
	"booking-billing/internal/pkg/clock"

	"github.com/google/uuid"
)

type StatementQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StatementView, error)
	ListByResource(ctx context.Context, resourceID uuid.UUID, status *string) ([]*StatementListItem, error)
	ListTransactions(ctx context.Context, statementID uuid.UUID) ([]*TransactionView, error)
}

type StatementViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StatementView, error)
	FindByResource(ctx context.Context, resourceID uuid.UUID, status *string) ([]*StatementListItem, error)
	FindTransactions(ctx context.Context, statementID uuid.UUID) ([]*TransactionView, error)
}

type statementQueriesImpl struct {
	repo StatementViewRepo
	clk  clock.Clock
}

func NewStatementQueries(repo StatementViewRepo, clk clock.Clock) StatementQueries {
	return &statementQueriesImpl{repo: repo, clk: clk}
}

// Overdue is derived at read time, never stored: rows keep only the status
// and due date, and the flag is recomputed against the current clock.
func (q *statementQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StatementView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Overdue = isOverdue(view.Status, view.DueDate, q.clk)
	return view, nil
}

func (q *statementQueriesImpl) ListByResource(ctx context.Context, resourceID uuid.UUID, status *string) ([]*StatementListItem, error) {
	items, err := q.repo.FindByResource(ctx, resourceID, status)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Overdue = isOverdue(item.Status, item.DueDate, q.clk)
	}
	return items, nil
}

func (q *statementQueriesImpl) ListTransactions(ctx context.Context, statementID uuid.UUID) ([]*TransactionView, error) {
	return q.repo.FindTransactions(ctx, statementID)
}

func isOverdue(status string, dueDate time.Time, clk clock.Clock) bool {
	return statement.OverdueAt(statement.Status(status), dueDate, clk.Now())
}
