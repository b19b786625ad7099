package deck

import (
	"encoding/json"
	"fmt"
)

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankNames[r]
}

// MarshalJSON encodes a Rank as its display name
func (r Rank) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a Rank from its display name
func (r *Rank) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	rank, err := ParseRank(name)
	if err != nil {
		return err
	}
	*r = rank
	return nil
}

// ParseRank converts a display name ("A", "2", ... "K") to a Rank
func ParseRank(name string) (Rank, error) {
	for i, n := range rankNames {
		if n == name {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rank %q", name)
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"hearts", "diamonds", "clubs", "spades"}

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

func (s Suit) String() string {
	if s < Hearts || s > Spades {
		return "?"
	}
	return suitNames[s]
}

// MarshalJSON encodes a Suit as its display name
func (s Suit) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a Suit from its display name
func (s *Suit) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	suit, err := ParseSuit(name)
	if err != nil {
		return err
	}
	*s = suit
	return nil
}

// ParseSuit converts a display name ("hearts", ...) to a Suit
func ParseSuit(name string) (Suit, error) {
	for i, n := range suitNames {
		if n == name {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", name)
}

// Card represents a playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) (Card, error) {
	if rank < Ace || rank > King || suit < Hearts || suit > Spades {
		return Card{}, fmt.Errorf("rank %d or suit %d out of range", rank, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
