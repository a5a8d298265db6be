// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"context"

	"costbook/internal/domain/entity"

	"github.com/google/uuid"
)

// Authorizer is the ownership-authorization port of the versioning engine.
// The engine calls ValidateSelfOrAdmin right after loading a target
// aggregate, and only then: when the aggregate cannot be found, not-found is
// reported without ever attempting authorization, so permission checks never
// leak resource existence.
type Authorizer interface {
	// CurrentPrincipal returns the authenticated caller carried on the
	// context, or an unauthenticated error when there is none.
	CurrentPrincipal(ctx context.Context) (*entity.Principal, error)

	// ValidateSelfOrAdmin fails with a forbidden error unless the calling
	// principal owns the resource (its id equals ownerID) or holds the admin
	// role.
	ValidateSelfOrAdmin(ctx context.Context, ownerID uuid.UUID) error
}
