package system

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cutcorp-booking/internal/authn"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/infra/cache"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

type fakeAuth struct{ ok bool }

func (f fakeAuth) Reauthenticate(context.Context, string, string) (*models.User, error) {
	if !f.ok {
		return nil, httperr.ErrBusiness(httperr.CodeSecurityDenied)
	}
	return &models.User{ID: "u1"}, nil
}

type fakeStore struct {
	rows    map[string][]string
	batches []string
	failAt  int
}

func (f *fakeStore) ListIDs(_ context.Context, table string) ([]string, error) {
	return f.rows[table], nil
}

func (f *fakeStore) DeleteIDs(_ context.Context, table string, ids []string) error {
	if f.failAt > 0 && len(f.batches)+1 == f.failAt {
		return errors.New("deadline exceeded")
	}
	f.batches = append(f.batches, fmt.Sprintf("%s:%d", table, len(ids)))
	return nil
}

func ids(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%d", prefix, i)
	}
	return out
}

func TestWipe_ChunksSequentially(t *testing.T) {
	store := &fakeStore{rows: map[string][]string{
		"appointments":  ids("a", 1000),
		"barbers":       ids("b", 3),
		"services":      ids("s", 0),
		"monthly_plans": ids("p", 491),
	}}
	c := cache.NewMemory()
	_ = c.Set(context.Background(), cache.ServicesKey(), []byte("[]"), 0)

	uc := NewWipe(store, fakeAuth{ok: true}, c, nil, nil, nil)
	res, err := uc.Execute(context.Background(), "u1", "segredo", "apagar")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"appointments:490", "appointments:490", "appointments:20",
		"barbers:3",
		"monthly_plans:490", "monthly_plans:1",
	}, store.batches)
	assert.Equal(t, 1000, res.Deleted["appointments"])
	assert.Equal(t, 0, res.Deleted["services"])

	_, err = c.Get(context.Background(), cache.ServicesKey())
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestWipe_Guards(t *testing.T) {
	store := &fakeStore{rows: map[string][]string{"appointments": ids("a", 5)}}

	_, err := NewWipe(store, fakeAuth{ok: false}, cache.NewMemory(), nil, nil, nil).
		Execute(context.Background(), "u1", "bad", "apagar")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSecurityDenied))

	_, err = NewWipe(store, fakeAuth{ok: true}, cache.NewMemory(), nil, nil, nil).
		Execute(context.Background(), "u1", "segredo", "APAGAR TUDO")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeConfirmationText))

	assert.Empty(t, store.batches)
}

func TestWipe_StopsOnFailureKeepingEarlierChunks(t *testing.T) {
	store := &fakeStore{
		rows:   map[string][]string{"appointments": ids("a", 1000)},
		failAt: 2,
	}

	res, err := NewWipe(store, fakeAuth{ok: true}, cache.NewMemory(), nil, nil, nil).
		Execute(context.Background(), "u1", "segredo", "apagar")
	require.Error(t, err)
	assert.Equal(t, 490, res.Deleted["appointments"])
	assert.Equal(t, []string{"appointments:490"}, store.batches)
}

func TestWipe_KeepsSignedOutTokensRevoked(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()
	sessions := authn.NewSessions(c, nil, time.Minute)

	require.NoError(t, sessions.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	_ = c.Set(ctx, cache.SlotsKey("b1", "2030-10-16"), []byte("[]"), 0)
	_ = c.Set(ctx, cache.TokenVersionKey("u1"), []byte("3"), 0)

	store := &fakeStore{rows: map[string][]string{"appointments": ids("a", 2)}}
	_, err := NewWipe(store, fakeAuth{ok: true}, c, nil, nil, nil).
		Execute(ctx, "u1", "segredo", "apagar")
	require.NoError(t, err)

	assert.True(t, sessions.IsRevoked(ctx, "jti-1"))

	_, err = c.Get(ctx, cache.SlotsKey("b1", "2030-10-16"))
	assert.ErrorIs(t, err, cache.ErrMiss)
	_, err = c.Get(ctx, cache.TokenVersionKey("u1"))
	assert.ErrorIs(t, err, cache.ErrMiss)
}
