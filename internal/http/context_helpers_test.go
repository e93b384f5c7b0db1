package httpx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/genzet/journal-ui/internal/domain/auth"
)

func TestSessionContextRoundTrip(t *testing.T) {
	session := userSession(domainauth.RoleUser)
	ctx := SetSessionInContext(context.Background(), session)

	got, ok := GetUserSessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, session, got)
	assert.Equal(t, session, GetSessionFromContext(ctx))
	assert.False(t, IsGuest(ctx))
}

func TestSessionContext_Empty(t *testing.T) {
	ctx := context.Background()

	got, ok := GetUserSessionFromContext(ctx)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Nil(t, GetSessionFromContext(ctx))
	assert.True(t, IsGuest(ctx))
}

func TestSetSessionInContext_NilSession(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, SetSessionInContext(ctx, nil))
}
