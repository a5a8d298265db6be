package repository

import (
	"context"

	"costbook/internal/domain/entity"
	"costbook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrUserNotFound is returned when an account does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines client account persistence operations.
type UserRepository interface {
	// Create persists a new account.
	Create(ctx context.Context, user *entity.User) error

	// FindByID loads one account.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail loads one account by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
