package redis

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestNewSessionStoreKeyValidation(t *testing.T) {
	_, err := NewSessionStore("not-hex")
	require.Error(t, err)

	_, err = NewSessionStore("abcd")
	require.Error(t, err, "short keys are rejected")

	_, err = NewSessionStore(testKeyHex)
	require.NoError(t, err)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	ctx := context.Background()

	data := &SessionData{
		Token:        "access-token",
		RefreshToken: "refresh-token",
		User:         json.RawMessage(`{"username":"buyer01"}`),
	}
	require.NoError(t, store.Save(ctx, "profile-1", data, time.Hour))

	loaded, err := store.Load(ctx, "profile-1")
	require.NoError(t, err)
	assert.Equal(t, "access-token", loaded.Token)
	assert.JSONEq(t, `{"username":"buyer01"}`, string(loaded.User))
}

func TestSessionStoreEncryptsAtRest(t *testing.T) {
	mr := setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)

	data := &SessionData{Token: "very-secret-token"}
	require.NoError(t, store.Save(context.Background(), "profile-1", data, time.Hour))

	raw, err := mr.Get("session:profile-1")
	require.NoError(t, err)
	assert.False(t, strings.Contains(raw, "very-secret-token"), "token must not be stored in plaintext")
}

func TestSessionStoreMissingProfile(t *testing.T) {
	setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreDelete(t *testing.T) {
	setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "profile-1", &SessionData{Token: "x"}, time.Hour))
	require.NoError(t, store.Delete(ctx, "profile-1"))

	_, err = store.Load(ctx, "profile-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreWrongKeyCannotDecrypt(t *testing.T) {
	setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "profile-1", &SessionData{Token: "x"}, time.Hour))

	otherKey := strings.Repeat("ff", 32)
	other, err := NewSessionStore(otherKey)
	require.NoError(t, err)

	_, err = other.Load(ctx, "profile-1")
	require.Error(t, err)
}

func TestSessionStoreExpiry(t *testing.T) {
	mr := setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "profile-1", &SessionData{Token: "x"}, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err = store.Load(ctx, "profile-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
