package auth

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Roles recognized by the service.
const (
	// RoleAdmin grants the back-office operations: farmer listings, application
	// decisions, settlement, and portfolio analytics.
	RoleAdmin = "admin"
	// RoleFarmer grants the end-user operations.
	RoleFarmer = "farmer"
)

// Claims is the token payload carried on every authenticated call.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Roles  []string  `json:"roles"`
}

// HasRole reports whether the token carries the given role.
func (c Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}
