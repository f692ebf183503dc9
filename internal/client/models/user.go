// Package models defines the data shapes exchanged with the portal backend.
package models

import (
	"fmt"

	"github.com/rosdobro/dobrodela-cli/internal/common"
)

// Role is the closed set of account roles known to the portal.
type Role string

const (
	RoleUser  Role = "user"
	RoleNKO   Role = "nko"
	RoleModer Role = "moder"
	RoleAdmin Role = "admin"
)

// ParseRole converts a raw string into a Role, rejecting anything outside the
// fixed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleNKO, RoleModer, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownRole, s)
	}
}

// User is the authenticated identity as reported by GET /users/me/.
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Login    string `json:"login"`
	Role     Role   `json:"role"`
}

// TokenResponse is the body of a successful POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest is the JSON payload of POST /auth/register.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
