package store

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/minaorangina/gofish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SnapshotStore {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "gofish.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func startedGame(t *testing.T) *gofish.Game {
	t.Helper()

	game := gofish.NewGame(gofish.GameOpts{Rand: rand.New(rand.NewSource(5))})
	require.NoError(t, game.Start(2))
	return game
}

func TestOpen(t *testing.T) {
	t.Run("requires a path", func(t *testing.T) {
		_, err := Open("")
		assert.Error(t, err)
	})

	t.Run("reopening keeps saved games", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gofish.db")

		s, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, s.Save("g1", startedGame(t).Snapshot()))
		require.NoError(t, s.Close())

		s, err = Open(path)
		require.NoError(t, err)
		defer s.Close()

		_, err = s.Load("g1")
		assert.NoError(t, err)
	})
}

func TestSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	game := startedGame(t)
	snap := game.Snapshot()

	require.NoError(t, s.Save("g1", snap))

	loaded, err := s.Load("g1")
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)

	t.Run("restored game matches the original", func(t *testing.T) {
		restored, err := gofish.RestoreGame(loaded, gofish.GameOpts{})
		require.NoError(t, err)
		assert.Equal(t, game.Snapshot(), restored.Snapshot())
	})

	t.Run("saving again overwrites", func(t *testing.T) {
		game2 := startedGame(t)
		require.NoError(t, s.Save("g1", game2.Snapshot()))

		loaded, err := s.Load("g1")
		require.NoError(t, err)
		assert.Equal(t, game2.Snapshot(), loaded)
	})
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Load("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save("g1", startedGame(t).Snapshot()))
	require.NoError(t, s.Delete("g1"))

	_, err := s.Load("g1")
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("deleting a missing save is fine", func(t *testing.T) {
		assert.NoError(t, s.Delete("never-existed"))
	})
}

func TestGameIDs(t *testing.T) {
	s := openTestStore(t)

	ids, err := s.GameIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, s.Save("g1", startedGame(t).Snapshot()))
	require.NoError(t, s.Save("g2", startedGame(t).Snapshot()))

	ids, err = s.GameIDs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"g1", "g2"}, ids)
}
