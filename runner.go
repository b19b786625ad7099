package gofish

import (
	"errors"
	"time"
)

// PlayAutomatedTurns plays automated players' turns until the human
// player holds the turn or the game ends. The delay paces each action
// for presentation; drivers that don't need pacing pass 0 and the loop
// runs back-to-back.
//
// A successful ask keeps the turn, as does drawing the very rank that
// was asked for; any other miss draws and passes the turn on. An
// automated player with no cards and no way to replenish simply passes.
func PlayAutomatedTurns(g *Game, delay time.Duration) error {
	if !g.InProgress() {
		return ErrNoGame
	}

	for !g.IsOver() {
		p := g.CurrentPlayer()
		if !p.IsAutomated {
			return nil
		}

		if delay > 0 {
			time.Sleep(delay)
		}

		rank, targetID, err := g.PickAutomatedMove(p.ID)
		if errors.Is(err, ErrEmptyHand) {
			g.AdvanceTurn()
			continue
		}
		if err != nil {
			return err
		}

		got, err := g.Ask(p.ID, targetID, rank)
		if err != nil {
			return err
		}
		if got {
			// the turn continues
			continue
		}

		drawn, ok, err := g.Draw(p.ID, rank)
		if err != nil {
			return err
		}
		if ok && drawn.Rank == rank {
			// fished out the asked rank, so the turn continues
			continue
		}
		g.AdvanceTurn()
	}

	return nil
}
