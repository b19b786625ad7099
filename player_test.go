package gofish

import (
	"testing"

	"github.com/minaorangina/gofish/deck"
	utils "github.com/minaorangina/gofish/internal"
)

func TestNewPlayer(t *testing.T) {
	tt := []struct {
		id          int
		name        string
		isAutomated bool
	}{
		{0, "You", false},
		{1, "Computer 1", true},
		{3, "Computer 3", true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(tc.id)

			utils.AssertEqual(t, p.Name, tc.name)
			utils.AssertEqual(t, p.IsAutomated, tc.isAutomated)
			utils.AssertEqual(t, p.Score, 0)
			utils.AssertEqual(t, len(p.Hand), 0)
		})
	}
}

func TestPlayersFind(t *testing.T) {
	ps := Players{NewPlayer(0), NewPlayer(1), NewPlayer(2)}

	p, ok := ps.Find(1)
	utils.AssertTrue(t, ok)
	utils.AssertEqual(t, p.ID, 1)

	_, ok = ps.Find(9)
	utils.AssertEqual(t, ok, false)
}

func TestPlayerHasRank(t *testing.T) {
	p := NewPlayer(0)
	p.Hand = []deck.Card{
		{Rank: deck.Seven, Suit: deck.Hearts},
		{Rank: deck.King, Suit: deck.Clubs},
	}

	utils.AssertTrue(t, p.HasRank(deck.Seven))
	utils.AssertEqual(t, p.HasRank(deck.Two), false)
}
