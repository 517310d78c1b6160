package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"sportmart.client/internal/domain/entities"
	domainerrors "sportmart.client/internal/domain/errors"
	"sportmart.client/pkg/redis"
)

// Store adapts the encrypted redis session store to the engine's SessionStore
// interface, for shared-host deployments where a sqlite file per user is not
// an option. One profile id maps to one logged-in user slot.
type Store struct {
	sessions  *redis.SessionStore
	profileID string
	expiry    time.Duration
}

// New creates a redis-backed session store for the given profile.
func New(encryptionKeyHex, profileID string, expiry time.Duration) (*Store, error) {
	sessions, err := redis.NewSessionStore(encryptionKeyHex)
	if err != nil {
		return nil, err
	}
	return &Store{sessions: sessions, profileID: profileID, expiry: expiry}, nil
}

// SaveSession persists the session under the profile id.
func (s *Store) SaveSession(ctx context.Context, session *entities.AuthSession) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return err
	}
	data := &redis.SessionData{
		Token:        session.Token,
		RefreshToken: session.RefreshToken,
		User:         userJSON,
	}
	return s.sessions.Save(ctx, s.profileID, data, s.expiry)
}

// LoadSession returns the persisted session, ErrNotFound when absent.
func (s *Store) LoadSession(ctx context.Context) (*entities.AuthSession, error) {
	data, err := s.sessions.Load(ctx, s.profileID)
	if err != nil {
		return nil, domainerrors.ErrNotFound
	}

	session := &entities.AuthSession{
		Token:        data.Token,
		RefreshToken: data.RefreshToken,
	}
	if len(data.User) > 0 {
		var user entities.User
		if err := json.Unmarshal(data.User, &user); err != nil {
			return nil, err
		}
		session.User = &user
	}
	return session, nil
}

// ClearSession removes the persisted session.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.sessions.Delete(ctx, s.profileID)
}
