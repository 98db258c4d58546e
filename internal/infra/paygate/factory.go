package paygate

import (
	"fmt"

	"booking-billing/internal/pkg/config"
)

// NewGateway selects the charging provider from configuration.
func NewGateway(cfg config.GatewayConfig) (Gateway, error) {
	switch cfg.Provider {
	case "rest":
		if cfg.BaseURL == "" || cfg.APIKey == "" {
			return nil, fmt.Errorf("rest gateway requires base URL and API key")
		}
		return NewRESTGateway(cfg), nil
	case "dummy", "":
		return NewDummyGateway(), nil
	default:
		return nil, fmt.Errorf("unknown gateway provider %q", cfg.Provider)
	}
}
