package components

import (
	"booking-billing/internal/infra/db"
	"booking-billing/internal/infra/readstore"
	"booking-billing/internal/infra/uow"
	"booking-billing/internal/usecase/queries"
	"booking-billing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewStatementReadStore,
			fx.As(new(queries.StatementViewRepo)),
		),
		fx.Annotate(
			readstore.NewBillingReadStore,
			fx.As(new(queries.BillingReadRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
