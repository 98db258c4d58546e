package repository

import (
	"context"

	"booking-billing/internal/infra"
	"booking-billing/internal/infra/db"
	"booking-billing/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type FxRateRepository struct {
	db db.DBTX
}

func NewFxRateRepository(db db.DBTX) *FxRateRepository {
	return &FxRateRepository{db: db}
}

// Rate reads the current USD conversion rate for a currency. The value is
// frozen into the statement at generation time; rows here may change freely
// afterwards.
func (r *FxRateRepository) Rate(ctx context.Context, currency string) (decimal.Decimal, error) {
	var rate pgtype.Numeric
	err := r.db.QueryRow(ctx,
		`SELECT rate FROM fx_rates WHERE currency = $1`, currency).Scan(&rate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return decimal.Decimal{}, infra.WrapRepoErr("fx rate not found", err, infra.KindNotFound)
		}
		return decimal.Decimal{}, infra.WrapRepoErr("failed to find fx rate", err)
	}
	rateDec, err := pgconv.DecimalFromNumeric(rate)
	if err != nil {
		return decimal.Decimal{}, infra.WrapRepoErr("failed to convert fx rate", err)
	}
	return rateDec, nil
}
