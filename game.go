package gofish

import (
	"errors"
	"math/rand"
	"time"

	"github.com/minaorangina/gofish/deck"
)

const (
	minPlayers = 2
	maxPlayers = 4
	handSize   = 7
)

var (
	ErrInvalidPlayerCount = errors.New("between 2 and 4 players required")
	ErrUnknownPlayer      = errors.New("unknown player ID")
	ErrEmptyHand          = errors.New("player's hand is empty")
	ErrNotYourTurn        = errors.New("not this player's turn")
	ErrGameOver           = errors.New("game is over")
	ErrSelfAsk            = errors.New("a player cannot ask themselves")
	ErrNoGame             = errors.New("no game in progress")
)

// Game owns the full state of one game of Go Fish. All mutation goes
// through its methods; drivers read snapshots and issue commands.
type Game struct {
	players            Players
	deck               deck.Deck
	currentPlayerIndex int
	lastAction         string
	isOver             bool
	winner             *Player
	isTie              bool
	strictTurns        bool
	rng                *rand.Rand
}

// GameOpts configures a Game
type GameOpts struct {
	// StrictTurns makes Ask and Draw reject calls for any player other
	// than the current one. Off by default: turn order is the driver's
	// responsibility.
	StrictTurns bool
	// Rand is the source of randomness. Defaults to a clock-seeded source.
	Rand *rand.Rand
}

// NewGame constructs a Game with no players. Call Start to begin a game.
func NewGame(opts GameOpts) *Game {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{rng: rng, strictTurns: opts.StrictTurns}
}

// Start begins a fresh game: builds and shuffles the deck, seats the
// players, deals seven cards each, strips any pairs present in the
// initial deal and picks a random starting player. Any previous game
// state is discarded.
func (g *Game) Start(numPlayers int) error {
	if numPlayers < minPlayers || numPlayers > maxPlayers {
		return ErrInvalidPlayerCount
	}

	d := deck.New()
	d.Shuffle(g.rng)

	players := make(Players, 0, numPlayers)
	for i := 0; i < numPlayers; i++ {
		players = append(players, NewPlayer(i))
	}

	g.players = players
	g.deck = d
	g.currentPlayerIndex = g.rng.Intn(numPlayers)
	g.lastAction = msgGameStarted
	g.isOver = false
	g.winner = nil
	g.isTie = false

	for _, p := range g.players {
		p.Hand = g.deck.Deal(handSize)
	}
	for _, p := range g.players {
		g.resolvePairs(p)
	}

	return nil
}

// Ask moves every card of the given rank from the target's hand to the
// asker's. It reports whether any cards changed hands; a miss means
// "go fish" and the driver is expected to follow up with Draw.
func (g *Game) Ask(askingPlayerID, targetPlayerID int, rank deck.Rank) (bool, error) {
	if len(g.players) == 0 {
		return false, ErrNoGame
	}
	if g.isOver {
		return false, ErrGameOver
	}
	if askingPlayerID == targetPlayerID {
		return false, ErrSelfAsk
	}

	asker, ok := g.players.Find(askingPlayerID)
	if !ok {
		return false, ErrUnknownPlayer
	}
	target, ok := g.players.Find(targetPlayerID)
	if !ok {
		return false, ErrUnknownPlayer
	}
	if g.strictTurns && g.players[g.currentPlayerIndex].ID != askingPlayerID {
		return false, ErrNotYourTurn
	}

	matching := []deck.Card{}
	remaining := []deck.Card{}
	for _, c := range target.Hand {
		if c.Rank == rank {
			matching = append(matching, c)
		} else {
			remaining = append(remaining, c)
		}
	}

	if len(matching) == 0 {
		g.lastAction = buildGoFishMessage(asker, target, rank)
		return false, nil
	}

	target.Hand = remaining
	asker.Hand = append(asker.Hand, matching...)
	g.lastAction = buildAskSuccessMessage(asker, target, rank, len(matching))

	g.resolvePairs(asker)
	g.replenishIfEmpty(target)

	return true, nil
}

// Draw takes one card from the deck into the player's hand. An
// askedRank carries the context of a preceding failed Ask into the
// status message. An empty deck is an expected terminal condition, not
// an error: no card is drawn and ok is false.
func (g *Game) Draw(playerID int, askedRank ...deck.Rank) (deck.Card, bool, error) {
	if len(g.players) == 0 {
		return deck.Card{}, false, ErrNoGame
	}
	if g.isOver {
		return deck.Card{}, false, ErrGameOver
	}

	p, ok := g.players.Find(playerID)
	if !ok {
		return deck.Card{}, false, ErrUnknownPlayer
	}
	if g.strictTurns && g.players[g.currentPlayerIndex].ID != playerID {
		return deck.Card{}, false, ErrNotYourTurn
	}

	card, drew := g.deck.Draw()
	if drew {
		p.Hand = append(p.Hand, card)
		if len(askedRank) > 0 {
			g.lastAction = buildGoFishDrawMessage(p, askedRank[0])
		} else {
			g.lastAction = buildDrawMessage(p)
		}
	}

	g.resolvePairs(p)

	if !drew {
		return deck.Card{}, false, nil
	}
	return card, true, nil
}

// AdvanceTurn passes the turn to the next player in seat order
func (g *Game) AdvanceTurn() {
	if len(g.players) == 0 || g.isOver {
		return
	}
	g.currentPlayerIndex = (g.currentPlayerIndex + 1) % len(g.players)
}

// InProgress reports whether a game has been started
func (g *Game) InProgress() bool {
	return len(g.players) > 0
}

// Players returns the seated players
func (g *Game) Players() Players {
	return g.players
}

// CurrentPlayer returns the player who holds the turn
func (g *Game) CurrentPlayer() *Player {
	if len(g.players) == 0 {
		return nil
	}
	return g.players[g.currentPlayerIndex]
}

// CurrentPlayerIndex returns the seat index of the turn holder
func (g *Game) CurrentPlayerIndex() int {
	return g.currentPlayerIndex
}

// DeckCount returns the number of undealt cards
func (g *Game) DeckCount() int {
	return len(g.deck)
}

// LastAction returns the most recent status message
func (g *Game) LastAction() string {
	return g.lastAction
}

// IsOver reports whether the game has ended
func (g *Game) IsOver() bool {
	return g.isOver
}

// Winner returns the winning player once the game is over. When IsTie
// reports true it is one of the tied players and drivers should not
// present it as the winner.
func (g *Game) Winner() *Player {
	return g.winner
}

// IsTie reports whether the game ended with a shared top score
func (g *Game) IsTie() bool {
	return g.isTie
}
