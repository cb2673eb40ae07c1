package services

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldquery/internal/client/models"
	"worldquery/internal/client/storage"
	"worldquery/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return storage.NewSQLiteStore(db)
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, "error")
}

func storedValue(t *testing.T, store *storage.SQLiteStore, key string) []byte {
	t.Helper()
	v, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

// ---- hydrate ----

func TestHydrate_NoStoredUser_StaysLoggedOut(t *testing.T) {
	s := NewSession(setupStore(t), testLogger())

	s.Hydrate(context.Background())

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())
}

func TestHydrate_MalformedUserJSON_StaysLoggedOut(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "user", []byte(`{not json`)))

	s := NewSession(store, testLogger())
	s.Hydrate(ctx)

	assert.False(t, s.IsAuthenticated())
}

func TestHydrate_UserWithoutIdentity_StaysLoggedOut(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "user", []byte(`{"id":"1"}`)))

	s := NewSession(store, testLogger())
	s.Hydrate(ctx)

	assert.False(t, s.IsAuthenticated())
}

func TestHydrate_ValidUser_RestoresSessionAndFavorites(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "user",
		[]byte(`{"id":"1","username":"test","email":"test@example.com"}`)))
	require.NoError(t, store.Set(ctx, "favorites_test@example.com", []byte(`["CAN","FRA"]`)))

	s := NewSession(store, testLogger())
	s.Hydrate(ctx)

	require.True(t, s.IsAuthenticated())
	assert.Equal(t, "test@example.com", s.CurrentUser().Email)
	assert.True(t, s.IsFavorite("CAN"))
	assert.True(t, s.IsFavorite("FRA"))
	assert.False(t, s.IsFavorite("DEU"))
}

func TestHydrate_MalformedFavorites_FallsBackToEmptySet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "user",
		[]byte(`{"id":"1","username":"test","email":"test@example.com"}`)))
	require.NoError(t, store.Set(ctx, "favorites_test@example.com", []byte(`{broken`)))

	s := NewSession(store, testLogger())
	s.Hydrate(ctx)

	// user record failure path and favorites failure path are independent
	require.True(t, s.IsAuthenticated())
	assert.Empty(t, s.Favorites())
}

// ---- login / logout ----

func TestLogin_AssignsIDAndDerivesUsername(t *testing.T) {
	s := NewSession(setupStore(t), testLogger())
	ctx := context.Background()

	user, err := s.Login(ctx, models.Credentials{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, s.IsAuthenticated())
}

func TestLogin_AssignsFreshIDs(t *testing.T) {
	s := NewSession(setupStore(t), testLogger())
	ctx := context.Background()

	first, err := s.Login(ctx, models.Credentials{Email: "a@x.com"})
	require.NoError(t, err)
	second, err := s.Login(ctx, models.Credentials{Email: "a@x.com"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestLogin_PersistsCurrentUser(t *testing.T) {
	store := setupStore(t)
	s := NewSession(store, testLogger())
	ctx := context.Background()

	_, err := s.Login(ctx, models.Credentials{Email: "alice@example.com"})
	require.NoError(t, err)

	assert.Contains(t, string(storedValue(t, store, "user")), `"email":"alice@example.com"`)
}

func TestLogout_ClearsSessionButKeepsFavoritesKey(t *testing.T) {
	store := setupStore(t)
	s := NewSession(store, testLogger())
	ctx := context.Background()

	_, err := s.Login(ctx, models.Credentials{Email: "alice@example.com"})
	require.NoError(t, err)
	require.NoError(t, s.ToggleFavorite(ctx, "CAN"))

	require.NoError(t, s.Logout(ctx))

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsFavorite("CAN"))
	assert.Nil(t, storedValue(t, store, "user"))
	assert.Equal(t, `["CAN"]`, string(storedValue(t, store, "favorites_alice@example.com")))
}

func TestLoginLogoutLogin_RestoresFavorites(t *testing.T) {
	store := setupStore(t)
	s := NewSession(store, testLogger())
	ctx := context.Background()

	_, err := s.Login(ctx, models.Credentials{Email: "alice@example.com"})
	require.NoError(t, err)
	require.NoError(t, s.ToggleFavorite(ctx, "FRA"))
	require.NoError(t, s.ToggleFavorite(ctx, "CAN"))
	before := s.Favorites()

	require.NoError(t, s.Logout(ctx))
	_, err = s.Login(ctx, models.Credentials{Email: "alice@example.com"})
	require.NoError(t, err)

	assert.Equal(t, before, s.Favorites())
}

// ---- favorites ----

func TestToggleFavorite_LoggedOut_IsNoOp(t *testing.T) {
	store := setupStore(t)
	s := NewSession(store, testLogger())
	ctx := context.Background()

	require.NoError(t, s.ToggleFavorite(ctx, "CAN"))

	assert.False(t, s.IsFavorite("CAN"))
	assert.Nil(t, storedValue(t, store, "favorites_"))
}

func TestToggleFavorite_PersistsSortedListAndRoundTrips(t *testing.T) {
	store := setupStore(t)
	s := NewSession(store, testLogger())
	ctx := context.Background()

	_, err := s.Login(ctx, models.Credentials{Email: "test@example.com"})
	require.NoError(t, err)

	require.NoError(t, s.ToggleFavorite(ctx, "USA"))
	assert.Equal(t, `["USA"]`, string(storedValue(t, store, "favorites_test@example.com")))

	require.NoError(t, s.ToggleFavorite(ctx, "USA"))
	assert.Equal(t, `[]`, string(storedValue(t, store, "favorites_test@example.com")))
	assert.False(t, s.IsFavorite("USA"))
}

func TestToggleFavorite_PersistedFormIsSorted(t *testing.T) {
	store := setupStore(t)
	s := NewSession(store, testLogger())
	ctx := context.Background()

	_, err := s.Login(ctx, models.Credentials{Email: "test@example.com"})
	require.NoError(t, err)

	require.NoError(t, s.ToggleFavorite(ctx, "USA"))
	require.NoError(t, s.ToggleFavorite(ctx, "CAN"))
	require.NoError(t, s.ToggleFavorite(ctx, "MEX"))

	assert.Equal(t, `["CAN","MEX","USA"]`,
		string(storedValue(t, store, "favorites_test@example.com")))
}

func TestIsFavorite_LoggedOut_ReturnsFalse(t *testing.T) {
	s := NewSession(setupStore(t), testLogger())
	assert.False(t, s.IsFavorite("CAN"))
}
