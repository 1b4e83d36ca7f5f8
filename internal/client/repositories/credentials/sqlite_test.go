package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM credentials`)
	require.NoError(t, err)
	return db
}

func TestRepository_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(setupDB(t))

	require.NoError(t, r.Set(ctx, "access_token", []byte("a1")))
	got, err := r.Get(ctx, "access_token")
	require.NoError(t, err)
	require.Equal(t, []byte("a1"), got)

	// overwrite
	require.NoError(t, r.Set(ctx, "access_token", []byte("a2")))
	got, err = r.Get(ctx, "access_token")
	require.NoError(t, err)
	require.Equal(t, []byte("a2"), got)
}

func TestRepository_MissingKeyReadsAbsent(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.Get(ctx, "never_written")
	require.NoError(t, err, "a missing key is absent, not an error")
	require.Nil(t, got)
}

func TestRepository_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(setupDB(t))

	require.NoError(t, r.Set(ctx, "access_token", []byte("a")))
	require.NoError(t, r.Set(ctx, "refresh_token", []byte("r")))
	require.NoError(t, r.Set(ctx, "user_data", []byte(`{"id":1}`)))

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Clear(ctx), "clear #%d", i+1)
	}

	for _, key := range []string{"access_token", "refresh_token", "user_data"} {
		got, err := r.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, got, "key %s must be absent after clear", key)
	}
}

func TestRepository_SetManyWritesAllKeys(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(setupDB(t))

	require.NoError(t, r.SetMany(ctx, map[string][]byte{
		"access_token":  []byte("a"),
		"refresh_token": []byte("r"),
	}))

	for key, want := range map[string]string{"access_token": "a", "refresh_token": "r"} {
		got, err := r.Get(ctx, key)
		require.NoError(t, err)
		require.Equal(t, []byte(want), got, "key %s", key)
	}
}

func TestStore_TokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewSQLiteRepository(setupDB(t)))

	require.NoError(t, s.SaveTokens(ctx, "acc-1", "ref-1"))

	access, err := s.AccessToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "acc-1", access)

	refresh, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "ref-1", refresh)
}

func TestStore_PartialSaveTolerated(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewSQLiteRepository(setupDB(t)))

	// Only one half of the pair present, as when the server rotates just
	// the access token.
	require.NoError(t, s.SaveTokens(ctx, "acc-only", ""))

	access, err := s.AccessToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "acc-only", access)

	refresh, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	require.Empty(t, refresh, "missing half reads as absent")
}

func TestStore_ClearWipesUserSnapshotToo(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewSQLiteRepository(setupDB(t)))

	require.NoError(t, s.SaveTokens(ctx, "a", "r"))
	require.NoError(t, s.SaveUser(ctx, []byte(`{"id":7,"name":"Asha"}`)))

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx)) // idempotent

	access, err := s.AccessToken(ctx)
	require.NoError(t, err)
	require.Empty(t, access)

	refresh, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	require.Empty(t, refresh)

	user, err := s.User(ctx)
	require.NoError(t, err)
	require.Nil(t, user)
}
