package gofish

import (
	"testing"

	"github.com/minaorangina/gofish/deck"
	utils "github.com/minaorangina/gofish/internal"
)

func TestPlayAutomatedTurns(t *testing.T) {
	t.Run("returns when the human holds the turn", func(t *testing.T) {
		game := testGame(
			deck.Deck{card(deck.Two, deck.Clubs)},
			[]deck.Card{card(deck.Ace, deck.Hearts)},
			[]deck.Card{card(deck.Nine, deck.Hearts)},
		)
		game.currentPlayerIndex = 0

		utils.AssertNoError(t, PlayAutomatedTurns(game, 0))

		utils.AssertEqual(t, game.CurrentPlayer().ID, 0)
	})

	t.Run("a missing ask draws and passes the turn on", func(t *testing.T) {
		// the bot holds only a king; the human has no kings, so the
		// bot must go fish and hand the turn over
		game := testGame(
			deck.Deck{card(deck.Two, deck.Clubs)},
			[]deck.Card{card(deck.Ace, deck.Hearts)},
			[]deck.Card{card(deck.King, deck.Spades)},
		)
		game.currentPlayerIndex = 1

		utils.AssertNoError(t, PlayAutomatedTurns(game, 0))

		utils.AssertEqual(t, game.CurrentPlayer().ID, 0)

		bot, _ := game.Players().Find(1)
		utils.AssertEqual(t, len(bot.Hand), 2)
		utils.AssertEqual(t, game.DeckCount(), 0)
	})

	t.Run("plays out a won endgame", func(t *testing.T) {
		// one king each, empty deck: the bot's only move takes the
		// human's king, pairs it and ends the game
		game := testGame(
			deck.Deck{},
			[]deck.Card{card(deck.King, deck.Hearts)},
			[]deck.Card{card(deck.King, deck.Spades)},
		)
		game.currentPlayerIndex = 1

		utils.AssertNoError(t, PlayAutomatedTurns(game, 0))

		utils.AssertTrue(t, game.IsOver())
		utils.AssertEqual(t, game.IsTie(), false)
		utils.AssertEqual(t, game.Winner().ID, 1)
		utils.AssertEqual(t, game.Winner().Score, 2)
	})

	t.Run("an empty-handed bot passes", func(t *testing.T) {
		game := testGame(
			deck.Deck{},
			[]deck.Card{card(deck.Ace, deck.Hearts)},
			[]deck.Card{},
		)
		game.currentPlayerIndex = 1

		utils.AssertNoError(t, PlayAutomatedTurns(game, 0))

		utils.AssertEqual(t, game.CurrentPlayer().ID, 0)
		utils.AssertEqual(t, game.IsOver(), false)
	})

	t.Run("no game in progress", func(t *testing.T) {
		game := NewGame(GameOpts{})
		utils.AssertErrorIs(t, PlayAutomatedTurns(game, 0), ErrNoGame)
	})
}
