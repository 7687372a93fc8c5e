package boltkv

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func openDB(t *testing.T, path string) *bolt.DB {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	require.NoError(t, err)
	return db
}

func TestKVRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("запись и чтение", func(t *testing.T) {
		db := openDB(t, filepath.Join(t.TempDir(), "state.bolt"))
		t.Cleanup(func() { db.Close() })
		repo, err := NewKVRepository(db)
		require.NoError(t, err)

		_, found, err := repo.Get(ctx, "devTeamData")
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, repo.Set(ctx, "devTeamData", `{"projects":[]}`))
		value, found, err := repo.Get(ctx, "devTeamData")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"projects":[]}`, value)
	})

	t.Run("значение переживает переоткрытие файла", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.bolt")

		db := openDB(t, path)
		repo, err := NewKVRepository(db)
		require.NoError(t, err)
		require.NoError(t, repo.Set(ctx, "devTeamData", "persisted"))
		require.NoError(t, db.Close())

		db = openDB(t, path)
		t.Cleanup(func() { db.Close() })
		repo, err = NewKVRepository(db)
		require.NoError(t, err)

		value, found, err := repo.Get(ctx, "devTeamData")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "persisted", value)
	})

	t.Run("отмененный контекст", func(t *testing.T) {
		db := openDB(t, filepath.Join(t.TempDir(), "state.bolt"))
		t.Cleanup(func() { db.Close() })
		repo, err := NewKVRepository(db)
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, repo.Set(cancelled, "k", "v"), context.Canceled)
	})
}
