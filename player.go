package gofish

import (
	"fmt"

	"github.com/minaorangina/gofish/deck"
)

// Player represents a participant in a game. Player 0 is the human
// seat; the rest are automated.
type Player struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	IsAutomated bool        `json:"is_automated"`
	Hand        []deck.Card `json:"hand"`
	Score       int         `json:"score"`
}

// NewPlayer constructs a Player named for its seat
func NewPlayer(id int) *Player {
	name := "You"
	if id != 0 {
		name = fmt.Sprintf("Computer %d", id)
	}
	return &Player{
		ID:          id,
		Name:        name,
		IsAutomated: id != 0,
		Hand:        []deck.Card{},
	}
}

// HasRank reports whether the player holds at least one card of the rank
func (p *Player) HasRank(rank deck.Rank) bool {
	for _, c := range p.Hand {
		if c.Rank == rank {
			return true
		}
	}
	return false
}

// Players is a collection of players in seat order
type Players []*Player

// Find returns the player with the given id
func (ps Players) Find(id int) (*Player, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Names returns the players' display names in seat order
func (ps Players) Names() []string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.Name)
	}
	return names
}
