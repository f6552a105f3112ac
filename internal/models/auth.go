package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims represents the access token payload issued by the identity provider.
type JWTClaims struct {
	UserID     string   `json:"user_id"`
	Role       UserRole `json:"role"`
	Email      string   `json:"email"`
	TeamNumber int      `json:"team_number,omitempty"`
	jwt.RegisteredClaims
}

// CanViewTeam reports whether the caller may read aggregates of team.
func (c *JWTClaims) CanViewTeam(team int) bool {
	if c == nil {
		return false
	}
	switch c.Role {
	case RoleAdmin:
		return true
	case RoleManager:
		return c.TeamNumber == team
	}
	return false
}
