package gofish

import (
	"sort"

	"github.com/minaorangina/gofish/deck"
)

// resolvePairs strips completed pairs from the player's hand and scores
// them. It runs after every hand mutation.
//
// A rank held exactly twice is a completed pair: both cards leave play
// and the player scores 2. A rank held exactly three times keeps one
// card and scores nothing, and four of a kind is kept wholesale; both
// can arise whenever several cards land at once, as in the initial
// deal or a replenish.
func (g *Game) resolvePairs(p *Player) {
	counts := map[deck.Rank]int{}
	order := []deck.Rank{}
	for _, c := range p.Hand {
		if counts[c.Rank] == 0 {
			order = append(order, c.Rank)
		}
		counts[c.Rank]++
	}

	paired := []deck.Rank{}
	for _, r := range order {
		if counts[r] == 2 {
			paired = append(paired, r)
		}
	}

	kept := []deck.Card{}
	tripleKept := map[deck.Rank]bool{}
	for _, c := range p.Hand {
		switch counts[c.Rank] {
		case 2:
			// completed pair, both cards leave play
		case 3:
			if !tripleKept[c.Rank] {
				tripleKept[c.Rank] = true
				kept = append(kept, c)
			}
		default:
			kept = append(kept, c)
		}
	}

	if len(kept) != len(p.Hand) {
		p.Hand = kept
	}
	if len(paired) > 0 {
		p.Score += 2 * len(paired)
		g.lastAction = buildPairsMessage(p, paired)
	}

	g.replenishIfEmpty(p)
	g.evaluateOutcome()
}

// replenishIfEmpty refills an emptied hand with up to seven cards from
// the deck, then resolves any pairs among the new cards.
func (g *Game) replenishIfEmpty(p *Player) {
	if len(p.Hand) != 0 || len(g.deck) == 0 {
		return
	}

	for i := 0; i < handSize; i++ {
		card, ok := g.deck.Draw()
		if !ok {
			break
		}
		p.Hand = append(p.Hand, card)
	}
	g.lastAction = buildReplenishMessage(p, len(p.Hand))

	g.resolvePairs(p)
}

// evaluateOutcome ends the game once the deck and every hand are empty.
// Subsequent calls are no-ops.
func (g *Game) evaluateOutcome() {
	if g.isOver || len(g.players) == 0 {
		return
	}
	if len(g.deck) > 0 {
		return
	}
	for _, p := range g.players {
		if len(p.Hand) > 0 {
			return
		}
	}

	ranked := make(Players, len(g.players))
	copy(ranked, g.players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	top := ranked[0]
	tiedForTop := 0
	for _, p := range g.players {
		if p.Score == top.Score {
			tiedForTop++
		}
	}

	g.isOver = true
	g.winner = top
	g.isTie = tiedForTop > 1

	if g.isTie {
		g.lastAction = buildTieMessage(top.Score)
	} else {
		g.lastAction = buildWinnerMessage(top)
	}
}
