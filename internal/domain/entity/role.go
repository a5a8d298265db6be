package entity

// Role represents the authorization role of a client account.
type Role string

const (
	// RoleClient is the default role for registered clients.
	RoleClient Role = "client"
	// RoleAdmin grants access to every client's resources.
	RoleAdmin Role = "admin"
)
