package usecases

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"sportmart.client/internal/domain/entities"
	domainerrors "sportmart.client/internal/domain/errors"
	"sportmart.client/internal/domain/gateways"
	"sportmart.client/pkg/jwt"
	"sportmart.client/pkg/logger"
)

// AuthUsecase owns the client session: login exchanges, token decoding and
// the persisted session lifecycle. State lives here and is injected where
// needed, never in an ambient singleton.
type AuthUsecase struct {
	gw       gateways.AuthGateway
	sessions gateways.SessionStore

	mu      sync.Mutex
	current *entities.AuthSession
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(gw gateways.AuthGateway, sessions gateways.SessionStore) *AuthUsecase {
	return &AuthUsecase{gw: gw, sessions: sessions}
}

// Initialize hydrates the session from persistent storage. A missing
// session is not an error; anything else is surfaced.
func (u *AuthUsecase) Initialize(ctx context.Context) error {
	session, err := u.sessions.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}

	u.mu.Lock()
	u.current = session
	u.mu.Unlock()
	if session.User != nil {
		logger.Debug(ctx, "session hydrated", zap.String("username", session.User.Username))
	}
	return nil
}

// Login exchanges username/password for a session.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.User, error) {
	resp, err := u.gw.Login(ctx, input)
	if err != nil {
		return nil, err
	}
	return u.adopt(ctx, resp)
}

// LoginWithGoogle exchanges a Google ID token for a session.
func (u *AuthUsecase) LoginWithGoogle(ctx context.Context, idToken string) (*entities.User, error) {
	resp, err := u.gw.LoginGoogle(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return u.adopt(ctx, resp)
}

// LoginWithFacebook exchanges a Facebook access token for a session.
func (u *AuthUsecase) LoginWithFacebook(ctx context.Context, accessToken string) (*entities.User, error) {
	resp, err := u.gw.LoginFacebook(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return u.adopt(ctx, resp)
}

// Teardown clears the in-memory and persisted session.
func (u *AuthUsecase) Teardown(ctx context.Context) error {
	u.mu.Lock()
	u.current = nil
	u.mu.Unlock()
	return u.sessions.ClearSession(ctx)
}

// CurrentUser returns the logged-in user, nil when logged out.
func (u *AuthUsecase) CurrentUser() *entities.User {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return nil
	}
	return u.current.User
}

// Token returns the current bearer token; satisfies rest.TokenProvider.
func (u *AuthUsecase) Token() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return ""
	}
	return u.current.Token
}

// adopt decodes the token's identity claims, reconciles them with the user
// object and persists the session. The token is decoded, not verified:
// verification is the backend's job.
func (u *AuthUsecase) adopt(ctx context.Context, resp *entities.AuthResponse) (*entities.User, error) {
	claims, err := jwt.DecodeUnverified(resp.Token)
	if err != nil {
		return nil, domainerrors.Unauthorized("phản hồi đăng nhập không hợp lệ")
	}

	user := resp.User
	if user == nil {
		user = &entities.User{}
	}
	user.ID = claims.UserID
	if user.Username == "" {
		user.Username = claims.Username
	}
	user.Role = mapRole(claims.Role)

	session := &entities.AuthSession{
		Token:        resp.Token,
		RefreshToken: resp.RefreshToken,
		User:         user,
	}
	if err := u.sessions.SaveSession(ctx, session); err != nil {
		logger.Warn(ctx, "failed to persist session", zap.Error(err))
	}

	u.mu.Lock()
	u.current = session
	u.mu.Unlock()
	return user, nil
}

// mapRole maps the numeric role claim onto the known role set; anything out
// of range degrades to buyer.
func mapRole(claim int) entities.Role {
	switch entities.Role(claim) {
	case entities.RoleAdmin, entities.RoleSeller, entities.RoleBuyer:
		return entities.Role(claim)
	default:
		return entities.RoleBuyer
	}
}
