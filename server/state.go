package server

import (
	"github.com/minaorangina/gofish"
	"github.com/minaorangina/gofish/deck"
)

// StatePlayer is a player as shown to the client. Automated players'
// hands are face down: only the count is sent.
type StatePlayer struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	IsAutomated bool        `json:"is_automated"`
	HandCount   int         `json:"hand_count"`
	Hand        []deck.Card `json:"hand,omitempty"`
	Score       int         `json:"score"`
}

// StateRes is the game state payload pushed to clients
type StateRes struct {
	GameID             string        `json:"game_id"`
	Players            []StatePlayer `json:"players"`
	DeckCount          int           `json:"deck_count"`
	CurrentPlayerIndex int           `json:"current_player_index"`
	LastAction         string        `json:"last_action"`
	IsOver             bool          `json:"is_over"`
	IsTie              bool          `json:"is_tie"`
	Winner             *int          `json:"winner,omitempty"`
}

func buildStateRes(gameID string, game *gofish.Game) StateRes {
	res := StateRes{
		GameID:             gameID,
		DeckCount:          game.DeckCount(),
		CurrentPlayerIndex: game.CurrentPlayerIndex(),
		LastAction:         game.LastAction(),
		IsOver:             game.IsOver(),
		IsTie:              game.IsTie(),
	}

	for _, p := range game.Players() {
		sp := StatePlayer{
			ID:          p.ID,
			Name:        p.Name,
			IsAutomated: p.IsAutomated,
			HandCount:   len(p.Hand),
			Score:       p.Score,
		}
		if !p.IsAutomated {
			sp.Hand = append([]deck.Card{}, p.Hand...)
		}
		res.Players = append(res.Players, sp)
	}

	if game.IsOver() && !game.IsTie() && game.Winner() != nil {
		id := game.Winner().ID
		res.Winner = &id
	}

	return res
}
