package components

import (
	"booking-billing/internal/handler"
	"booking-billing/internal/handler/api"
	"booking-billing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewStatementHandler,
		api.NewBillingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
