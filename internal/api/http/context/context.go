// Package context stores the authenticated caller identity on request
// contexts.
package context

import (
	"context"

	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

type contextKey int

const identityKey contextKey = iota

// Manager sets and retrieves the caller identity on a request context.
type Manager struct{}

// NewManager creates a new context Manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a child context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.UserIdentity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext returns the identity stored on the context, if any.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.UserIdentity, bool) {
	identity, ok := ctx.Value(identityKey).(model.UserIdentity)
	return identity, ok
}
