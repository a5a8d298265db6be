package auth

import (
	"context"

	"costbook/internal/domain/entity"
	domainerrors "costbook/internal/domain/errors"
	"costbook/internal/domain/service"

	"github.com/google/uuid"
)

type principalContextKey struct{}

// WithPrincipal returns a context carrying the authenticated principal. The
// auth middleware calls this after validating the access token.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

// PrincipalFromContext extracts the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (*entity.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(*entity.Principal)

	return principal, ok
}

// contextAuthorizer implements the Authorizer interface against the principal
// carried on the request context.
type contextAuthorizer struct{}

// NewContextAuthorizer is the constructor for contextAuthorizer.
func NewContextAuthorizer() service.Authorizer {
	return &contextAuthorizer{}
}

// CurrentPrincipal returns the authenticated caller carried on the context.
func (a *contextAuthorizer) CurrentPrincipal(ctx context.Context) (*entity.Principal, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok || principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return principal, nil
}

// ValidateSelfOrAdmin fails with a forbidden error unless the caller owns the
// resource or holds the admin role.
func (a *contextAuthorizer) ValidateSelfOrAdmin(ctx context.Context, ownerID uuid.UUID) error {
	principal, err := a.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	if principal.ID == ownerID || principal.IsAdmin() {
		return nil
	}

	return domainerrors.ErrForbidden
}
