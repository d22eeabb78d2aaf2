//go:build unit

package identity_test

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/infra"
	"court-booking/internal/infra/identity"
	"court-booking/internal/pkg/clock"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisRevocationStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("revoked id is remembered until the token would expire", func(t *testing.T) {
		mr, client := newRedis(t)
		store := identity.NewRedisRevocationStore(client, clock.NewMockClock(now))

		require.NoError(t, store.Revoke(ctx, "jti-1", now.Add(30*time.Minute)))

		revoked, err := store.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)
		assert.Equal(t, 30*time.Minute, mr.TTL("court-booking:revoked:jti-1"))

		mr.FastForward(31 * time.Minute)
		revoked, err = store.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("already expired tokens are not stored", func(t *testing.T) {
		mr, client := newRedis(t)
		store := identity.NewRedisRevocationStore(client, clock.NewMockClock(now))

		require.NoError(t, store.Revoke(ctx, "jti-2", now.Add(-time.Second)))

		assert.False(t, mr.Exists("court-booking:revoked:jti-2"))
	})

	t.Run("unknown id is not revoked", func(t *testing.T) {
		_, client := newRedis(t)
		store := identity.NewRedisRevocationStore(client, clock.NewMockClock(now))

		revoked, err := store.IsRevoked(ctx, "never-seen")

		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("redis down surfaces as a DB failure", func(t *testing.T) {
		mr, client := newRedis(t)
		store := identity.NewRedisRevocationStore(client, clock.NewMockClock(now))
		mr.Close()

		_, err := store.IsRevoked(ctx, "jti-3")

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
