package repository

import (
	"context"

	"booking-billing/internal/domain/billing"
	"booking-billing/internal/domain/resource"
	"booking-billing/internal/infra"
	"booking-billing/internal/infra/db"
	"booking-billing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceRepository struct {
	db db.DBTX
}

func NewResourceRepository(db db.DBTX) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	var (
		name                 string
		active               bool
		model                string
		rate                 pgtype.Numeric
		currency             string
		monthlyLimit         int32
		anchorDay            int32
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT name, active, commission_model, commission_rate, currency, monthly_limit, anchor_day,
			created_at, updated_at
		FROM resources WHERE id = $1`, id).Scan(
		&name, &active, &model, &rate, &currency, &monthlyLimit, &anchorDay, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	rateDec, err := pgconv.DecimalFromNumeric(rate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert commission rate", err)
	}

	return resource.ReconstructResource(
		id, name, active,
		billing.Pricing{
			Model:    billing.Model(model),
			Rate:     rateDec,
			Currency: currency,
			Limit:    int(monthlyLimit),
		},
		int(anchorDay),
		createdAt.Time, updatedAt.Time,
	), nil
}

func (r *ResourceRepository) Deactivate(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE resources SET active = false, updated_at = now()
		WHERE id = $1 AND active = true`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to deactivate resource", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ResourceRepository) Activate(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE resources SET active = true, updated_at = now()
		WHERE id = $1 AND active = false`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to activate resource", err)
	}
	return tag.RowsAffected() == 1, nil
}
