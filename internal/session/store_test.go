package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"azushop-client/internal/domain"
	"azushop-client/internal/storage"
)

// failingStore simulates an unavailable storage medium
type failingStore struct {
	getErr    error
	setErr    error
	deleteErr error
	sets      int
	deletes   int
}

func (f *failingStore) Get(key string) (string, bool, error) {
	return "", false, f.getErr
}

func (f *failingStore) SetMany(values map[string]string) error {
	f.sets++
	return f.setErr
}

func (f *failingStore) DeleteMany(keys ...string) error {
	f.deletes++
	return f.deleteErr
}

func testUser() domain.User {
	return domain.User{
		ID:       "user-1",
		Username: "jane",
		Email:    "jane@example.com",
		IsAdmin:  false,
	}
}

func TestStore_SetThenGet(t *testing.T) {
	store := NewStore(storage.NewMemoryStore(), 24*time.Hour)
	user := testUser()

	before := time.Now()
	store.Set(user, "token-abc")

	got, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, user, got.User)
	assert.Equal(t, "token-abc", got.Token)

	// Expiry is approximately now + 24h (unix-second granularity)
	want := before.Add(24 * time.Hour)
	assert.WithinDuration(t, want, got.ExpiresAt, 5*time.Second)
}

func TestStore_GetAfterExpiry(t *testing.T) {
	backend := storage.NewMemoryStore()
	store := NewStore(backend, 24*time.Hour)
	store.Set(testUser(), "token-abc")

	// Advance the clock past the expiry window
	store.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	_, ok := store.Get()
	assert.False(t, ok)

	// The clear must be durable: a fresh store over the same backend
	// with a normal clock also sees no session
	fresh := NewStore(backend, 24*time.Hour)
	_, ok = fresh.Get()
	assert.False(t, ok)
}

func TestStore_PartialRecordIsAbsent(t *testing.T) {
	backend := storage.NewMemoryStore()
	require.NoError(t, backend.SetMany(map[string]string{
		"userToken": "token-abc",
	}))

	store := NewStore(backend, 24*time.Hour)
	_, ok := store.Get()
	assert.False(t, ok)
	assert.False(t, store.IsValid())
}

func TestStore_CorruptExpiryIsCleared(t *testing.T) {
	backend := storage.NewMemoryStore()
	require.NoError(t, backend.SetMany(map[string]string{
		"userToken":     "token-abc",
		"userData":      `{"_id":"user-1","username":"jane","email":"jane@example.com","isAdmin":false}`,
		"sessionExpiry": "not-a-number",
		"isAdmin":       "false",
	}))

	store := NewStore(backend, 24*time.Hour)
	_, ok := store.Get()
	assert.False(t, ok)

	// Corrupt record was removed, not just skipped
	_, present, err := backend.Get("userToken")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestStore_CorruptUserDataIsCleared(t *testing.T) {
	backend := storage.NewMemoryStore()
	require.NoError(t, backend.SetMany(map[string]string{
		"userToken":     "token-abc",
		"userData":      "{broken",
		"sessionExpiry": "9999999999",
		"isAdmin":       "false",
	}))

	store := NewStore(backend, 24*time.Hour)
	_, ok := store.Get()
	assert.False(t, ok)

	_, present, _ := backend.Get("userData")
	assert.False(t, present)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := NewStore(storage.NewMemoryStore(), 24*time.Hour)

	// Clearing with no prior session must not panic or error
	store.Clear()
	store.Clear()
	assert.False(t, store.IsValid())

	store.Set(testUser(), "token-abc")
	store.Clear()
	store.Clear()
	assert.False(t, store.IsValid())
}

func TestStore_Extend(t *testing.T) {
	t.Run("extends_existing_session", func(t *testing.T) {
		store := NewStore(storage.NewMemoryStore(), 24*time.Hour)
		store.Set(testUser(), "token-abc")

		first, ok := store.Get()
		require.True(t, ok)

		// Move the clock forward so the recomputed expiry strictly increases
		store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		assert.True(t, store.Extend())

		second, ok := store.Get()
		require.True(t, ok)
		assert.True(t, second.ExpiresAt.After(first.ExpiresAt),
			"extend must strictly increase expiry: %v -> %v", first.ExpiresAt, second.ExpiresAt)
	})

	t.Run("no_session_returns_false_without_write", func(t *testing.T) {
		backend := &failingStore{}
		store := NewStore(backend, 24*time.Hour)

		assert.False(t, store.Extend())
		assert.Zero(t, backend.sets)
	})

	t.Run("expired_session_is_not_extended", func(t *testing.T) {
		store := NewStore(storage.NewMemoryStore(), 24*time.Hour)
		store.Set(testUser(), "token-abc")
		store.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

		assert.False(t, store.Extend())
	})
}

func TestStore_StorageUnavailable(t *testing.T) {
	backend := &failingStore{
		getErr:    errors.New("storage disabled"),
		setErr:    errors.New("quota exceeded"),
		deleteErr: errors.New("storage disabled"),
	}
	store := NewStore(backend, 24*time.Hour)

	// Every operation degrades to no-session without panicking
	store.Set(testUser(), "token-abc")

	_, ok := store.Get()
	assert.False(t, ok)
	assert.False(t, store.IsValid())
	assert.False(t, store.Extend())
	store.Clear()
}

func TestStore_DenormalizedAdminFlag(t *testing.T) {
	backend := storage.NewMemoryStore()
	store := NewStore(backend, 24*time.Hour)

	admin := testUser()
	admin.IsAdmin = true
	store.Set(admin, "token-abc")

	flag, ok, err := backend.Get("isAdmin")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", flag)
}

func TestStore_DefaultTTL(t *testing.T) {
	store := NewStore(storage.NewMemoryStore(), 0)
	store.Set(testUser(), "token-abc")

	got, ok := store.Get()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), got.ExpiresAt, 5*time.Second)
}
