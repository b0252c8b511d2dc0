package preferences

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explorai/explorai-api/internal/types"
)

func newTestStore(ttl time.Duration) *CacheStore {
	return NewCacheStore(ttl, time.Minute, slog.New(slog.DiscardHandler))
}

func TestStore_CreateAndGet(t *testing.T) {
	store := newTestStore(time.Minute)
	ctx := context.Background()

	created := store.Create(ctx)
	require.NotNil(t, created)

	got, err := store.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Same(t, created, got)
}

func TestStore_GetUnknownSession(t *testing.T) {
	store := newTestStore(time.Minute)

	_, err := store.Get(context.Background(), "no-such-session")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestStore_SessionExpires(t *testing.T) {
	store := newTestStore(20 * time.Millisecond)
	ctx := context.Background()

	created := store.Create(ctx)
	time.Sleep(50 * time.Millisecond)

	_, err := store.Get(ctx, created.ID.String())
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestStore_GetSlidesExpiration(t *testing.T) {
	store := newTestStore(60 * time.Millisecond)
	ctx := context.Background()

	created := store.Create(ctx)
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		_, err := store.Get(ctx, created.ID.String())
		require.NoError(t, err)
	}
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	store := newTestStore(time.Minute)
	ctx := context.Background()

	a := store.Create(ctx)
	b := store.Create(ctx)

	a.ToggleInterest("cultura")

	assert.Empty(t, b.Preferences().Interests)
	assert.NotEqual(t, a.ID, b.ID)
}
