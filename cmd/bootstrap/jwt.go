package bootstrap

import (
	"time"

	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService reads token lifetimes from the same clock the usecases use.
func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	ttl, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrapf(err, "parse JWT_DURATION %q", cfg.JWT.Duration)
	}
	if ttl <= 0 {
		return nil, errs.Newf("JWT_DURATION must be positive, got %s", ttl)
	}
	return jwt.NewService(cfg.JWT.Secret, ttl, jwt.WithNow(clk.Now)), nil
}
