package service

import (
	"context"

	"arches/internal/domain/entity"
	"arches/internal/errors"
)

// ErrInvalidCredential is returned for a credential that is malformed, expired or forged.
var ErrInvalidCredential = errors.New("invalid credential")

// IdentityResolver turns a request credential into an identity.
type IdentityResolver interface {
	// ResolveIdentity returns the identity carried by credential, or ErrInvalidCredential.
	ResolveIdentity(ctx context.Context, credential string) (*entity.Identity, error)
}
