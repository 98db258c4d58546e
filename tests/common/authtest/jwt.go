//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"booking-billing/internal/pkg/config"
	"booking-billing/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, operatorID uuid.UUID, role string) string {
	t.Helper()
	token, err := jwt.GenerateToken(h.cfg.Secret, operatorID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, operatorID uuid.UUID, role string) string {
	t.Helper()
	token, err := jwt.GenerateToken(h.cfg.Secret, operatorID, role, -time.Minute)
	require.NoError(t, err)
	return token
}
