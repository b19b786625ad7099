package gofish

import "github.com/minaorangina/gofish/deck"

// PickAutomatedMove chooses a move for an automated player: the rank of
// a random card in their hand, and a random other player to ask for it.
// It mutates nothing. A player with no cards cannot move; the driver
// must advance the turn instead.
func (g *Game) PickAutomatedMove(playerID int) (deck.Rank, int, error) {
	p, ok := g.players.Find(playerID)
	if !ok {
		return 0, 0, ErrUnknownPlayer
	}
	if len(p.Hand) == 0 {
		return 0, 0, ErrEmptyHand
	}

	rank := p.Hand[g.rng.Intn(len(p.Hand))].Rank

	others := make(Players, 0, len(g.players)-1)
	for _, other := range g.players {
		if other.ID != playerID {
			others = append(others, other)
		}
	}
	target := others[g.rng.Intn(len(others))]

	return rank, target.ID, nil
}
