//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"barbershop-booking/internal/domain/auth"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) OwnerToken(t *testing.T, tenantID uuid.UUID) string {
	t.Helper()
	return h.generate(t, tenantID, auth.RoleOwner, h.duration(t))
}

// AdminToken mints an admin token. No endpoint issues these.
func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.generate(t, uuid.Nil, auth.RoleAdmin, h.duration(t))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, tenantID uuid.UUID) string {
	t.Helper()
	d := h.duration(t)
	issuedAt := time.Now().Add(-2 * d)
	token, err := jwt.NewService(h.cfg.Secret, d, jwt.WithNow(func() time.Time { return issuedAt })).
		GenerateToken(tenantID, auth.RoleOwner)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) duration(t *testing.T) time.Duration {
	t.Helper()
	d, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return d
}

func (h *JWTHelper) generate(t *testing.T, tenantID uuid.UUID, role auth.Role, d time.Duration) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, d)
	token, err := service.GenerateToken(tenantID, role)
	require.NoError(t, err)
	return token
}
