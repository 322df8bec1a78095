package authn

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cutcorp-booking/internal/domain/auth"
	"github.com/BruksfildServices01/cutcorp-booking/internal/infra/cache"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

type fakeUsers struct {
	auth.Repository
	user  models.User
	calls int
}

func (f *fakeUsers) GetUser(context.Context, string) (*models.User, error) {
	f.calls++
	u := f.user
	return &u, nil
}

func TestSessions_Revoke(t *testing.T) {
	ctx := context.Background()
	s := NewSessions(cache.NewMemory(), &fakeUsers{}, time.Minute)

	assert.False(t, s.IsRevoked(ctx, "jti-1"))
	require.NoError(t, s.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	assert.True(t, s.IsRevoked(ctx, "jti-1"))

	require.NoError(t, s.Revoke(ctx, "jti-2", time.Now().Add(-time.Hour)))
	assert.False(t, s.IsRevoked(ctx, "jti-2"))
}

func TestSessions_CurrentVersionIsCached(t *testing.T) {
	ctx := context.Background()
	users := &fakeUsers{user: models.User{ID: "u1", TokenVersion: 2}}
	s := NewSessions(cache.NewMemory(), users, time.Minute)

	v, err := s.CurrentVersion(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	_, _ = s.CurrentVersion(ctx, "u1")
	assert.Equal(t, 1, users.calls)

	users.user.TokenVersion = 3
	s.Forget(ctx, "u1")
	v, _ = s.CurrentVersion(ctx, "u1")
	assert.Equal(t, 3, v)
}
