package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/cutcorp-booking/internal/audit"
	"github.com/BruksfildServices01/cutcorp-booking/internal/authn"
	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/auth"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

const MinPasswordLength = 6

type SignInResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// Service holds every credential operation of the back-office.
type Service struct {
	users    domain.Repository
	tokens   *authn.Tokens
	sessions *authn.Sessions
	audit    *audit.Dispatcher
}

func NewService(
	users domain.Repository,
	tokens *authn.Tokens,
	sessions *authn.Sessions,
	audit *audit.Dispatcher,
) *Service {
	return &Service{users: users, tokens: tokens, sessions: sessions, audit: audit}
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidLogin)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidLogin)
	}

	token, claims, err := s.tokens.Issue(user.ID, user.TokenVersion)
	if err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "signed_in",
		Entity: "user",
	})

	return &SignInResult{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: user}, nil
}

// Reauthenticate is the gate in front of destructive operations: the
// current password must be typed again.
func (s *Service) Reauthenticate(ctx context.Context, userID, password string) (*models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, httperr.ErrBusiness(httperr.CodeSecurityDenied)
	}
	return user, nil
}

// ChangePassword bumps the token version, which signs out every session
// including the caller's.
func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.Reauthenticate(ctx, userID, current)
	if err != nil {
		return err
	}
	if len(next) < MinPasswordLength {
		return httperr.ErrValidation("new_password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.TokenVersion++
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return err
	}
	s.sessions.Forget(ctx, user.ID)

	s.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "password_changed",
		Entity: "user",
	})
	return nil
}

func (s *Service) SignOut(ctx context.Context, claims *authn.Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	return s.sessions.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (s *Service) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetUser(ctx, userID)
}
