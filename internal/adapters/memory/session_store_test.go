package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/genzet/journal-ui/internal/domain/auth"
	"github.com/genzet/journal-ui/internal/ports"
)

func testSession(id string, ttl time.Duration) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		Username:  "alice",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	sess := testSession("sess-1", time.Hour)

	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.Username, got.Username)
	assert.Equal(t, sess.Role, got.Role)
}

func TestSessionStore_Save_Validation(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, testSession("", time.Hour)))
	assert.Error(t, store.Save(ctx, testSession("sess-1", -time.Minute)))
}

func TestSessionStore_Get_Missing(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_Get_ExpiredIsRemoved(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := testSession("sess-1", 10*time.Millisecond)
	require.NoError(t, store.Save(ctx, sess))

	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	// Still absent on a second read after the expiry cleanup.
	_, err = store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("sess-1", time.Hour)))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err := store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	// Deleting a missing or empty id is a no-op.
	assert.NoError(t, store.Delete(ctx, "sess-1"))
	assert.NoError(t, store.Delete(ctx, ""))
}
