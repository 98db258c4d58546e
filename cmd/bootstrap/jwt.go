package bootstrap

import (
	"booking-billing/internal/pkg/config"
	"booking-billing/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTValidator,
	),
)

func NewJWTValidator(cfg config.Config) *jwt.Validator {
	return jwt.NewValidator(cfg.JWT.Secret)
}
