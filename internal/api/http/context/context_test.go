package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

func TestManager_SetAndGetIdentity(t *testing.T) {
	m := NewManager()

	identity := model.UserIdentity{
		ID:          "user@example.com",
		DisplayName: "Test User",
		Email:       "user@example.com",
	}

	ctx := m.SetIdentityToContext(stdctx.Background(), identity)

	got, ok := m.GetIdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestManager_GetIdentityFromEmptyContext(t *testing.T) {
	m := NewManager()

	_, ok := m.GetIdentityFromContext(stdctx.Background())
	assert.False(t, ok)
}
