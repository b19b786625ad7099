package deck

import "math/rand"

// Deck represents an ordered deck of cards. Cards are dealt from the
// front and drawn from the back.
type Deck []Card

// New creates a full deck of 52 unique cards
func New() Deck {
	cards := Deck{}
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Shuffle permutes the deck in place (Fisher–Yates)
func (d Deck) Shuffle(r *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal removes and returns up to n cards from the front of the deck
func (d *Deck) Deal(n int) []Card {
	if n < 0 {
		return []Card{}
	}
	if n > len(*d) {
		n = len(*d)
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}

// Draw removes and returns one card from the back of the deck.
// It reports false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	last := len(*d) - 1
	card := (*d)[last]
	*d = (*d)[:last]
	return card, true
}
