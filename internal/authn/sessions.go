package authn

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/auth"
	"github.com/BruksfildServices01/cutcorp-booking/internal/infra/cache"
)

// Sessions answers the per-request questions the auth middleware asks:
// was this token signed out, and is its version still current.
type Sessions struct {
	cache cache.Cache
	users auth.Repository
	ttl   time.Duration
}

func NewSessions(c cache.Cache, users auth.Repository, ttl time.Duration) *Sessions {
	return &Sessions{cache: c, users: users, ttl: ttl}
}

// Revoke denylists a token id until the token would have expired anyway.
func (s *Sessions) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, cache.RevokedKey(jti), []byte("1"), ttl)
}

func (s *Sessions) IsRevoked(ctx context.Context, jti string) bool {
	_, err := s.cache.Get(ctx, cache.RevokedKey(jti))
	return err == nil
}

func (s *Sessions) CurrentVersion(ctx context.Context, userID string) (int, error) {
	return cache.Fetch(ctx, s.cache, cache.TokenVersionKey(userID), s.ttl,
		func(ctx context.Context) (int, error) {
			u, err := s.users.GetUser(ctx, userID)
			if err != nil {
				return 0, err
			}
			return u.TokenVersion, nil
		})
}

// Forget drops the cached version after a password change.
func (s *Sessions) Forget(ctx context.Context, userID string) {
	_ = s.cache.Delete(ctx, cache.TokenVersionKey(userID))
}
