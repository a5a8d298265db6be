// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a client account that owns ingredients, products and recipes.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Name         string    // Display name.
	Email        string    // Login identifier, unique across accounts.
	PasswordHash string    // Bcrypt hash of the login password. Never serialized.
	Role         Role      // Authorization role (client or admin).
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// IsAdmin reports whether the account holds the admin capability.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Principal identifies the authenticated caller of a use case operation.
// It is built by the auth middleware from the validated access token and
// travels on the request context.
type Principal struct {
	ID    uuid.UUID
	Roles []string
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	for _, role := range p.Roles {
		if role == string(RoleAdmin) {
			return true
		}
	}

	return false
}
