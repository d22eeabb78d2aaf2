package identity

import (
	"context"
	"time"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "court-booking:revoked:"

// RevocationStore remembers signed-out token ids until the tokens expire on their own.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type RedisRevocationStore struct {
	client redis.UniversalClient
	clock  clock.Clock
}

func NewRedisRevocationStore(client redis.UniversalClient, clk clock.Clock) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, clock: clk}
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(s.clock.Now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to revoke token", err, infra.KindDBFailure)
	}
	return nil
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to check token revocation", err, infra.KindDBFailure)
	}
	return n > 0, nil
}
