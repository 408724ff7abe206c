package model

import "context"

// UserIdentity is the authenticated caller as resolved from an identity
// token. ID is the stable user identifier used to key profiles.
type UserIdentity struct {
	ID          string
	DisplayName string
	Email       string
}

// IdentityResolver maps a bearer token to a user identity.
type IdentityResolver interface {
	Resolve(token string) (UserIdentity, error)
}

// ContextManager stores and retrieves the caller identity on a request context.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity UserIdentity) context.Context
	GetIdentityFromContext(ctx context.Context) (UserIdentity, bool)
}
