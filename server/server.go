package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/minaorangina/gofish"
	"github.com/minaorangina/gofish/deck"
	"github.com/minaorangina/gofish/store"
)

const humanPlayerID = 0

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	NumPlayers int `json:"num_players"`
}

type AskReq struct {
	TargetID int    `json:"target_id"`
	Rank     string `json:"rank"`
}

type AskRes struct {
	GotCards bool     `json:"got_cards"`
	State    StateRes `json:"state"`
}

type DrawReq struct {
	AskedRank string `json:"asked_rank,omitempty"`
}

type DrawRes struct {
	Drew  bool       `json:"drew"`
	Card  *deck.Card `json:"card,omitempty"`
	State StateRes   `json:"state"`
}

// GameServerOpts configures a GameServer
type GameServerOpts struct {
	Store gofish.GameStore
	// Saves persists snapshots across restarts; nil disables persistence
	Saves    *store.SnapshotStore
	BotDelay time.Duration
	Logger   *logrus.Logger
}

// GameServer exposes the engine to a browser UI. It is the driver: the
// engine never schedules turns itself, so the server runs the
// automated players whenever the human's turn ends.
type GameServer struct {
	store    gofish.GameStore
	saves    *store.SnapshotStore
	botDelay time.Duration
	log      *logrus.Logger
	handler  http.Handler

	// mu guards locks. Each game has its own lock so one game's bot
	// pacing never blocks requests for another game.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewID returns a fresh game ID
func NewID() string {
	return uuid.NewV4().String()
}

// gameLock returns the lock serialising access to one game. The engine
// is not safe for concurrent use, so state reads hold it too.
func (s *GameServer) gameLock(gameID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[gameID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[gameID] = l
	}
	return l
}

// NewServer creates a new GameServer
func NewServer(opts GameServerOpts) *GameServer {
	s := &GameServer{
		store:    opts.Store,
		saves:    opts.Saves,
		botDelay: opts.BotDelay,
		log:      opts.Logger,
		locks:    map[string]*sync.Mutex{},
	}
	if s.store == nil {
		s.store = gofish.NewInMemoryGameStore()
	}
	if s.log == nil {
		s.log = logrus.New()
	}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleGame))
	router.Handle("/ws/", http.HandlerFunc(s.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	s.handler = handlers.LoggingHandler(s.log.Writer(), cors(router))

	return s
}

// ServeHTTP serves http
func (s *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// HandleNewGame creates and starts a game
func (s *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, "could not parse request", http.StatusBadRequest)
		return
	}

	game := gofish.NewGame(gofish.GameOpts{})
	if err := game.Start(data.NumPlayers); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	gameID := NewID()
	lock := s.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.AddGame(gameID, game); err != nil {
		s.log.WithError(err).Error("could not store new game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	s.persist(gameID, game)

	s.log.WithFields(logrus.Fields{
		"game_id":     gameID,
		"num_players": data.NumPlayers,
	}).Info("new game")

	writeJSON(w, http.StatusCreated, buildStateRes(gameID, game))
}

// HandleGame routes /game/{id} and /game/{id}/{action}
func (s *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/game/"), "/")
	gameID := parts[0]
	if gameID == "" {
		http.Error(w, "missing game ID", http.StatusBadRequest)
		return
	}

	game := s.findGame(gameID)
	if game == nil {
		http.Error(w, fmt.Sprintf("%s %q", gofish.ErrUnknownGameID, gameID), http.StatusNotFound)
		return
	}

	action := ""
	if len(parts) > 1 {
		action = parts[1]
	}

	switch action {
	case "":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		lock := s.gameLock(gameID)
		lock.Lock()
		state := buildStateRes(gameID, game)
		lock.Unlock()
		writeJSON(w, http.StatusOK, state)

	case "ask":
		s.handleAsk(w, r, gameID, game)

	case "draw":
		s.handleDraw(w, r, gameID, game)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// handleAsk performs the human player's ask. A successful ask keeps
// the turn; on a miss the client follows up with a draw.
func (s *GameServer) handleAsk(w http.ResponseWriter, r *http.Request, gameID string, game *gofish.Game) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var data AskReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, "could not parse request", http.StatusBadRequest)
		return
	}

	rank, err := deck.ParseRank(data.Rank)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lock := s.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	got, err := game.Ask(humanPlayerID, data.TargetID, rank)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.persist(gameID, game)

	writeJSON(w, http.StatusOK, AskRes{
		GotCards: got,
		State:    buildStateRes(gameID, game),
	})
}

// handleDraw draws for the human player, then ends their turn and
// plays the automated players, unless the drawn card is the rank they
// asked for.
func (s *GameServer) handleDraw(w http.ResponseWriter, r *http.Request, gameID string, game *gofish.Game) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var data DrawReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, "could not parse request", http.StatusBadRequest)
		return
	}

	var askedRank []deck.Rank
	if data.AskedRank != "" {
		rank, err := deck.ParseRank(data.AskedRank)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		askedRank = append(askedRank, rank)
	}

	lock := s.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	card, drew, err := game.Draw(humanPlayerID, askedRank...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	keptTurn := drew && len(askedRank) > 0 && card.Rank == askedRank[0]
	if !keptTurn && !game.IsOver() {
		game.AdvanceTurn()
		if err := gofish.PlayAutomatedTurns(game, s.botDelay); err != nil {
			s.log.WithError(err).WithField("game_id", gameID).Error("automated turns failed")
		}
	}
	s.persist(gameID, game)

	res := DrawRes{
		Drew:  drew,
		State: buildStateRes(gameID, game),
	}
	if drew {
		res.Card = &card
	}
	writeJSON(w, http.StatusOK, res)
}

// findGame looks the game up in memory, falling back to a saved
// snapshot. A broken save is treated as no save at all.
func (s *GameServer) findGame(gameID string) *gofish.Game {
	if game := s.store.FindGame(gameID); game != nil {
		return game
	}
	if s.saves == nil {
		return nil
	}

	snap, err := s.saves.Load(gameID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.WithError(err).WithField("game_id", gameID).Warn("could not load saved game")
		}
		return nil
	}

	game, err := gofish.RestoreGame(snap, gofish.GameOpts{})
	if err != nil {
		s.log.WithError(err).WithField("game_id", gameID).Warn("could not restore saved game")
		return nil
	}

	if err := s.store.AddGame(gameID, game); err != nil {
		// someone else restored it first
		return s.store.FindGame(gameID)
	}
	return game
}

func (s *GameServer) persist(gameID string, game *gofish.Game) {
	if s.saves == nil {
		return
	}
	if err := s.saves.Save(gameID, game.Snapshot()); err != nil {
		s.log.WithError(err).WithField("game_id", gameID).Warn("could not save game")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
