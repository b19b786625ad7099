package gofish

import (
	"fmt"
	"strings"

	"github.com/minaorangina/gofish/deck"
)

// Status messages are part of the persisted state: drivers render them
// verbatim, so their wording is stable.

const msgGameStarted = "Game started"

func buildAskSuccessMessage(asker, target *Player, rank deck.Rank, count int) string {
	return fmt.Sprintf("%s got %d %s(s) from %s", asker.Name, count, rank, target.Name)
}

func buildGoFishMessage(asker, target *Player, rank deck.Rank) string {
	return fmt.Sprintf("%s asked %s for %ss - Go Fish!", asker.Name, target.Name, rank)
}

func buildGoFishDrawMessage(p *Player, askedRank deck.Rank) string {
	return fmt.Sprintf("%s asked for %ss - Go Fish! Drew a card.", p.Name, askedRank)
}

func buildDrawMessage(p *Player) string {
	return fmt.Sprintf("%s drew a card", p.Name)
}

func buildPairsMessage(p *Player, paired []deck.Rank) string {
	names := make([]string, 0, len(paired))
	for _, r := range paired {
		names = append(names, r.String())
	}
	return fmt.Sprintf("%s matched %d pair(s) of %ss!", p.Name, len(paired), strings.Join(names, ", "))
}

func buildReplenishMessage(p *Player, count int) string {
	return fmt.Sprintf("%s drew %d new card(s)", p.Name, count)
}

func buildTieMessage(score int) string {
	return fmt.Sprintf("Game Over! It's a tie with %d points!", score)
}

func buildWinnerMessage(winner *Player) string {
	return fmt.Sprintf("Game Over! %s wins with %d points!", winner.Name, winner.Score)
}
