package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/minaorangina/gofish"
	"github.com/minaorangina/gofish/deck"
	"github.com/minaorangina/gofish/protocol"
)

// WSCommand is a client action over the websocket
type WSCommand struct {
	Command   string `json:"command"`
	TargetID  int    `json:"target_id,omitempty"`
	Rank      string `json:"rank,omitempty"`
	AskedRank string `json:"asked_rank,omitempty"`
}

// WSMessage is a server-to-client push
type WSMessage struct {
	Command string    `json:"command"`
	State   *StateRes `json:"state,omitempty"`
	Error   string    `json:"error,omitempty"`
}

func stateMessage(gameID string, game *gofish.Game) WSMessage {
	state := buildStateRes(gameID, game)
	cmd := protocol.State
	if state.IsOver {
		cmd = protocol.GameOver
	}
	return WSMessage{Command: cmd.String(), State: &state}
}

func errorMessage(err error) WSMessage {
	return WSMessage{Command: protocol.Error.String(), Error: err.Error()}
}

// HandleWS streams game state over a websocket. The client sends Ask
// and Draw commands; the server applies them, runs the automated
// players and pushes the refreshed state after every change.
func (s *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := strings.TrimPrefix(r.URL.Path, "/ws/")
	if gameID == "" {
		http.Error(w, "missing game ID", http.StatusBadRequest)
		return
	}

	game := s.findGame(gameID)
	if game == nil {
		http.Error(w, fmt.Sprintf("%s %q", gofish.ErrUnknownGameID, gameID), http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	lock := s.gameLock(gameID)
	lock.Lock()
	initial := stateMessage(gameID, game)
	lock.Unlock()

	if err := conn.WriteJSON(initial); err != nil {
		return
	}

	for {
		var cmd WSCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}

		switch cmd.Command {
		case protocol.Ask.String():
			s.wsAsk(gameID, game, cmd, conn.WriteJSON)

		case protocol.Draw.String():
			s.wsDraw(gameID, game, cmd, conn.WriteJSON)

		case protocol.AdvanceTurn.String():
			s.wsAdvance(gameID, game, conn.WriteJSON)

		default:
			conn.WriteJSON(WSMessage{
				Command: protocol.Error.String(),
				Error:   "unknown command " + cmd.Command,
			})
		}
	}
}

func (s *GameServer) wsAsk(gameID string, game *gofish.Game, cmd WSCommand, send func(interface{}) error) {
	rank, err := deck.ParseRank(cmd.Rank)
	if err != nil {
		send(errorMessage(err))
		return
	}

	lock := s.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := game.Ask(humanPlayerID, cmd.TargetID, rank); err != nil {
		send(errorMessage(err))
		return
	}
	s.persist(gameID, game)
	send(stateMessage(gameID, game))
}

func (s *GameServer) wsDraw(gameID string, game *gofish.Game, cmd WSCommand, send func(interface{}) error) {
	var askedRank []deck.Rank
	if cmd.AskedRank != "" {
		rank, err := deck.ParseRank(cmd.AskedRank)
		if err != nil {
			send(errorMessage(err))
			return
		}
		askedRank = append(askedRank, rank)
	}

	lock := s.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	card, drew, err := game.Draw(humanPlayerID, askedRank...)
	if err != nil {
		send(errorMessage(err))
		return
	}
	send(stateMessage(gameID, game))

	keptTurn := drew && len(askedRank) > 0 && card.Rank == askedRank[0]
	if !keptTurn && !game.IsOver() {
		game.AdvanceTurn()
		if err := gofish.PlayAutomatedTurns(game, s.botDelay); err != nil {
			s.log.WithError(err).WithField("game_id", gameID).Error("automated turns failed")
		}
		send(stateMessage(gameID, game))
	}
	s.persist(gameID, game)
}

func (s *GameServer) wsAdvance(gameID string, game *gofish.Game, send func(interface{}) error) {
	lock := s.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game.AdvanceTurn()
	if err := gofish.PlayAutomatedTurns(game, s.botDelay); err != nil {
		s.log.WithError(err).WithField("game_id", gameID).Error("automated turns failed")
	}
	s.persist(gameID, game)
	send(stateMessage(gameID, game))
}
