package auth

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole   = errors.New("invalid role")
	ErrTenantMissing = errors.New("owner principal requires a tenant")
)

// Role of an authenticated principal. Customers booking a slot are anonymous.
type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Principal is the identity extracted from a validated token.
type Principal struct {
	tenantID uuid.UUID
	role     Role
}

func NewPrincipal(tenantID uuid.UUID, role Role) (Principal, error) {
	if !role.IsValid() {
		return Principal{}, ErrInvalidRole
	}
	if role == RoleOwner && tenantID == uuid.Nil {
		return Principal{}, ErrTenantMissing
	}
	return Principal{tenantID: tenantID, role: role}, nil
}

func (p Principal) TenantID() uuid.UUID { return p.tenantID }
func (p Principal) Role() Role          { return p.role }
func (p Principal) IsAdmin() bool       { return p.role == RoleAdmin }

// CanAccessTenant reports whether the principal may act on the given tenant's data.
func (p Principal) CanAccessTenant(tenantID uuid.UUID) bool {
	if p.role == RoleAdmin {
		return true
	}
	return p.role == RoleOwner && p.tenantID == tenantID
}
