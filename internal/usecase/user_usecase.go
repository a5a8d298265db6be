package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RegisterInput carries the fields of a new account registration.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserOutput is the read model of an account.
type UserOutput struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// TokenPair carries a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserUsecase manages client accounts and login sessions.
type UserUsecase interface {
	// Register creates a new client account.
	Register(ctx context.Context, input *RegisterInput) (*UserOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*UserOutput, *TokenPair, error)

	// GetProfile returns the authenticated client's account.
	GetProfile(ctx context.Context) (*UserOutput, error)
}
