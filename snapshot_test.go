package gofish

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/minaorangina/gofish/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	t.Run("captures a flat copy of the state", func(t *testing.T) {
		game := NewGame(GameOpts{Rand: rand.New(rand.NewSource(7))})
		require.NoError(t, game.Start(3))

		snap := game.Snapshot()

		assert.Len(t, snap.Players, 3)
		assert.True(t, snap.HasActiveGame)
		assert.False(t, snap.IsOver)
		assert.Nil(t, snap.Winner)
		assert.Equal(t, game.DeckCount(), len(snap.Deck))
		assert.Equal(t, game.LastAction(), snap.LastAction)

		// mutating the snapshot must not touch the live game
		handSizeBefore := len(game.Players()[0].Hand)
		snap.Players[0].Hand = snap.Players[0].Hand[:0]
		snap.Deck = snap.Deck[:0]
		assert.Len(t, game.Players()[0].Hand, handSizeBefore)
		assert.Equal(t, game.DeckCount(), len(game.Snapshot().Deck))
	})

	t.Run("no active game", func(t *testing.T) {
		game := NewGame(GameOpts{})

		snap := game.Snapshot()

		assert.False(t, snap.HasActiveGame)
		assert.Empty(t, snap.Players)
	})
}

func TestRestoreGame(t *testing.T) {
	t.Run("round trip through JSON reproduces the state", func(t *testing.T) {
		game := NewGame(GameOpts{Rand: rand.New(rand.NewSource(11))})
		require.NoError(t, game.Start(2))

		data, err := json.Marshal(game.Snapshot())
		require.NoError(t, err)

		var snap Snapshot
		require.NoError(t, json.Unmarshal(data, &snap))

		restored, err := RestoreGame(snap, GameOpts{})
		require.NoError(t, err)

		assert.Equal(t, game.Snapshot(), restored.Snapshot())
	})

	t.Run("restored game behaves like the original", func(t *testing.T) {
		original := testGame(
			deck.Deck{card(deck.Two, deck.Clubs)},
			[]deck.Card{card(deck.Ace, deck.Hearts), card(deck.Nine, deck.Clubs)},
			[]deck.Card{card(deck.Nine, deck.Hearts)},
		)

		restored, err := RestoreGame(original.Snapshot(), GameOpts{})
		require.NoError(t, err)

		for _, g := range []*Game{original, restored} {
			got, err := g.Ask(0, 1, deck.Nine)
			require.NoError(t, err)
			assert.True(t, got)
		}

		assert.Equal(t, original.Snapshot(), restored.Snapshot())
	})

	t.Run("restores the finished-game verdict", func(t *testing.T) {
		game := testGame(deck.Deck{}, []deck.Card{}, []deck.Card{})
		game.players[0].Score = 4
		game.evaluateOutcome()
		require.True(t, game.IsOver())

		restored, err := RestoreGame(game.Snapshot(), GameOpts{})
		require.NoError(t, err)

		assert.True(t, restored.IsOver())
		assert.Equal(t, 0, restored.Winner().ID)
		assert.False(t, restored.IsTie())
	})

	t.Run("rejects an out-of-range turn pointer", func(t *testing.T) {
		game := testGame(deck.Deck{}, []deck.Card{}, []deck.Card{})
		snap := game.Snapshot()
		snap.CurrentPlayerIndex = 5

		_, err := RestoreGame(snap, GameOpts{})
		assert.Error(t, err)
	})

	t.Run("empty snapshot yields a fresh engine", func(t *testing.T) {
		restored, err := RestoreGame(Snapshot{}, GameOpts{})
		require.NoError(t, err)
		assert.False(t, restored.InProgress())
	})
}
