package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/minaorangina/gofish"
	"github.com/minaorangina/gofish/deck"
	"github.com/minaorangina/gofish/store"
)

// the CLI keeps a single saved game under this id
const saveID = "cli"

func main() {
	dbPath := flag.String("db", "gofish.db", "path to the saved-game database")
	numPlayers := flag.Int("players", 2, "number of players (2-4)")
	botDelay := flag.Duration("delay", time.Second, "pause between automated moves")
	fresh := flag.Bool("fresh", false, "ignore any saved game")
	flag.Parse()

	saves, err := store.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open %s: %s (playing without saves)\n", *dbPath, err)
		saves = nil
	} else {
		defer saves.Close()
	}

	game := loadOrStart(saves, *numPlayers, *fresh)
	input := bufio.NewScanner(os.Stdin)

	for {
		persist(saves, game)
		printState(game)

		if game.IsOver() {
			if saves != nil {
				saves.Delete(saveID)
			}
			return
		}

		if game.CurrentPlayer().IsAutomated {
			if err := gofish.PlayAutomatedTurns(game, *botDelay); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			continue
		}

		humanTurn(game, input)
	}
}

func loadOrStart(saves *store.SnapshotStore, numPlayers int, fresh bool) *gofish.Game {
	if saves != nil && !fresh {
		if snap, err := saves.Load(saveID); err == nil {
			if game, err := gofish.RestoreGame(snap, gofish.GameOpts{}); err == nil && game.InProgress() {
				fmt.Println("Resuming saved game. Run with -fresh to start over.")
				return game
			}
		}
	}

	game := gofish.NewGame(gofish.GameOpts{})
	if err := game.Start(numPlayers); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return game
}

func persist(saves *store.SnapshotStore, game *gofish.Game) {
	if saves == nil {
		return
	}
	if err := saves.Save(saveID, game.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "could not save game: %s\n", err)
	}
}

func printState(game *gofish.Game) {
	fmt.Println()
	fmt.Println(game.LastAction())
	fmt.Printf("Deck: %d cards\n", game.DeckCount())

	for _, p := range game.Players() {
		if p.IsAutomated {
			fmt.Printf("  %s: %d cards, %d points\n", p.Name, len(p.Hand), p.Score)
		} else {
			hand := make([]string, 0, len(p.Hand))
			for _, c := range p.Hand {
				hand = append(hand, c.String())
			}
			fmt.Printf("  %s: [%s], %d points\n", p.Name, strings.Join(hand, ", "), p.Score)
		}
	}
}

// humanTurn reads and applies one move for the human player. The turn
// ends on a failed ask, unless the go-fish draw lands the asked rank.
func humanTurn(game *gofish.Game, input *bufio.Scanner) {
	human, _ := game.Players().Find(0)
	if len(human.Hand) == 0 {
		// no card to ask with and no deck left to refill from
		fmt.Println("No cards left to play. Passing.")
		game.AdvanceTurn()
		return
	}

	rank, ok := promptRank(game, input)
	if !ok {
		return
	}
	targetID, ok := promptTarget(game, input)
	if !ok {
		return
	}

	got, err := game.Ask(0, targetID, rank)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if got {
		return
	}

	fmt.Println(game.LastAction())
	card, drew, err := game.Draw(0, rank)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if drew && card.Rank == rank {
		fmt.Printf("You fished out the %s! Go again.\n", card)
		return
	}
	game.AdvanceTurn()
}

func promptRank(game *gofish.Game, input *bufio.Scanner) (deck.Rank, bool) {
	human, _ := game.Players().Find(0)

	for {
		fmt.Print("Ask for which rank? ")
		if !input.Scan() {
			os.Exit(0)
		}

		rank, err := deck.ParseRank(strings.TrimSpace(input.Text()))
		if err != nil {
			fmt.Println(err)
			continue
		}
		if !human.HasRank(rank) {
			fmt.Println("You can only ask for a rank you hold.")
			continue
		}
		return rank, true
	}
}

func promptTarget(game *gofish.Game, input *bufio.Scanner) (int, bool) {
	others := []*gofish.Player{}
	for _, p := range game.Players() {
		if p.ID != 0 {
			others = append(others, p)
		}
	}
	if len(others) == 1 {
		return others[0].ID, true
	}

	for {
		names := make([]string, 0, len(others))
		for _, p := range others {
			names = append(names, fmt.Sprintf("%d=%s", p.ID, p.Name))
		}
		fmt.Printf("Ask whom? (%s) ", strings.Join(names, ", "))
		if !input.Scan() {
			os.Exit(0)
		}

		id, err := strconv.Atoi(strings.TrimSpace(input.Text()))
		if err != nil || !isOther(others, id) {
			fmt.Println(errors.New("pick one of the listed players"))
			continue
		}
		return id, true
	}
}

func isOther(others []*gofish.Player, id int) bool {
	for _, p := range others {
		if p.ID == id {
			return true
		}
	}
	return false
}
