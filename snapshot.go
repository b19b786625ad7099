package gofish

import (
	"fmt"

	"github.com/minaorangina/gofish/deck"
)

// Snapshot is the flat persisted form of a game. Restoring it
// reproduces engine behaviour exactly; HasActiveGame is derived from
// the player list and carried only for drivers that want the flag.
type Snapshot struct {
	Players            []Player    `json:"players"`
	Deck               []deck.Card `json:"deck"`
	CurrentPlayerIndex int         `json:"current_player_index"`
	LastAction         string      `json:"last_action"`
	HasActiveGame      bool        `json:"has_active_game"`
	IsOver             bool        `json:"is_over"`
	Winner             *int        `json:"winner"`
	IsTie              bool        `json:"is_tie"`
}

// Snapshot captures the current game state as a flat record
func (g *Game) Snapshot() Snapshot {
	players := make([]Player, len(g.players))
	for i, p := range g.players {
		cp := *p
		cp.Hand = append([]deck.Card{}, p.Hand...)
		players[i] = cp
	}

	snap := Snapshot{
		Players:            players,
		Deck:               append([]deck.Card{}, g.deck...),
		CurrentPlayerIndex: g.currentPlayerIndex,
		LastAction:         g.lastAction,
		HasActiveGame:      len(g.players) > 0,
		IsOver:             g.isOver,
		IsTie:              g.isTie,
	}
	if g.winner != nil {
		id := g.winner.ID
		snap.Winner = &id
	}
	return snap
}

// RestoreGame reconstructs a game from a snapshot
func RestoreGame(snap Snapshot, opts GameOpts) (*Game, error) {
	g := NewGame(opts)
	if len(snap.Players) == 0 {
		// nothing saved; callers get a fresh engine
		return g, nil
	}
	if snap.CurrentPlayerIndex < 0 || snap.CurrentPlayerIndex >= len(snap.Players) {
		return nil, fmt.Errorf("current player index %d out of range", snap.CurrentPlayerIndex)
	}

	players := make(Players, len(snap.Players))
	for i := range snap.Players {
		cp := snap.Players[i]
		cp.Hand = append([]deck.Card{}, cp.Hand...)
		players[i] = &cp
	}

	g.players = players
	g.deck = append(deck.Deck{}, snap.Deck...)
	g.currentPlayerIndex = snap.CurrentPlayerIndex
	g.lastAction = snap.LastAction
	g.isOver = snap.IsOver
	g.isTie = snap.IsTie

	if snap.Winner != nil {
		w, ok := players.Find(*snap.Winner)
		if !ok {
			return nil, ErrUnknownPlayer
		}
		g.winner = w
	}

	return g, nil
}
