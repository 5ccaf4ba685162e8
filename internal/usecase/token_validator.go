package usecase

import (
	"barbershop-booking/internal/domain/auth"
	"barbershop-booking/internal/pkg/jwt"
	"barbershop-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (auth.Principal, error)
}

type jwtTokens struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokens{jwtService: jwtService}
}

func NewTokenIssuer(jwtService *jwt.Service) commands.TokenIssuer {
	return &jwtTokens{jwtService: jwtService}
}

func (t *jwtTokens) ValidateToken(tokenString string) (auth.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Principal{}, err
	}

	role, err := auth.NewRole(claims.Role)
	if err != nil {
		return auth.Principal{}, err
	}

	return auth.NewPrincipal(claims.TenantID, role)
}

func (t *jwtTokens) IssueOwnerToken(tenantID uuid.UUID) (string, error) {
	return t.jwtService.GenerateToken(tenantID, auth.RoleOwner)
}
