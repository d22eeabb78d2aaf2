//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, h.cfg.RefreshDuration, clock.NewRealClock())
	token, _, err := service.GenerateToken(userID)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token issued two access lifetimes ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * h.cfg.Duration))
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, h.cfg.RefreshDuration, past)
	token, _, err := service.GenerateToken(userID)
	require.NoError(t, err)
	return token
}
