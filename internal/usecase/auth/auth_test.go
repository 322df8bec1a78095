package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/cutcorp-booking/internal/authn"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/infra/cache"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

type memUsers struct {
	user models.User
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if email != m.user.Email {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	u := m.user
	return &u, nil
}

func (m *memUsers) GetUser(_ context.Context, id string) (*models.User, error) {
	if id != m.user.ID {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	u := m.user
	return &u, nil
}

func (m *memUsers) UpdateUser(_ context.Context, u *models.User) error {
	m.user = *u
	return nil
}

func newService(t *testing.T) (*Service, *memUsers, *authn.Sessions) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &memUsers{user: models.User{ID: "u1", Email: "admin@cutcorp.com", PasswordHash: string(hash), TokenVersion: 1}}
	sessions := authn.NewSessions(cache.NewMemory(), users, time.Minute)
	return NewService(users, authn.NewTokens("secret"), sessions, nil), users, sessions
}

func TestSignIn(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	res, err := svc.SignIn(ctx, "admin@cutcorp.com", "segredo")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "u1", res.User.ID)

	_, err = svc.SignIn(ctx, "admin@cutcorp.com", "errada")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidLogin))

	_, err = svc.SignIn(ctx, "ghost@cutcorp.com", "segredo")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidLogin))
}

func TestReauthenticate(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Reauthenticate(context.Background(), "u1", "segredo")
	assert.NoError(t, err)

	_, err = svc.Reauthenticate(context.Background(), "u1", "nope")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSecurityDenied))
}

func TestChangePassword_SignsEveryoneOut(t *testing.T) {
	svc, users, sessions := newService(t)
	ctx := context.Background()

	v, _ := sessions.CurrentVersion(ctx, "u1")
	assert.Equal(t, 1, v)

	err := svc.ChangePassword(ctx, "u1", "segredo", "123")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))

	err = svc.ChangePassword(ctx, "u1", "wrong", "novasenha")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSecurityDenied))

	require.NoError(t, svc.ChangePassword(ctx, "u1", "segredo", "novasenha"))
	assert.Equal(t, 2, users.user.TokenVersion)

	v, _ = sessions.CurrentVersion(ctx, "u1")
	assert.Equal(t, 2, v)

	_, err = svc.SignIn(ctx, "admin@cutcorp.com", "novasenha")
	assert.NoError(t, err)
}

func TestSignOut(t *testing.T) {
	svc, _, sessions := newService(t)
	ctx := context.Background()

	res, err := svc.SignIn(ctx, "admin@cutcorp.com", "segredo")
	require.NoError(t, err)
	claims, err := authn.NewTokens("secret").Parse(res.Token)
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, claims))
	assert.True(t, sessions.IsRevoked(ctx, claims.ID))
}
