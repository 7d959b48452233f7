package deck

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRank = errors.New("unknown rank")

// Rank represents a rank in a deck of cards.
// Its integer value is the card's face value, aces high.
type Rank int

const (
	NullRank Rank = iota
	_
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
	Ace
)

var rankNames = map[Rank]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

var rankTokens = map[string]Rank{
	"2":  Two,
	"3":  Three,
	"4":  Four,
	"5":  Five,
	"6":  Six,
	"7":  Seven,
	"8":  Eight,
	"9":  Nine,
	"10": Ten,
	"t":  Ten,
	"j":  Jack,
	"q":  Queen,
	"k":  King,
	"a":  Ace,
}

// Ranks lists every playable rank, lowest first.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// Valid reports whether r is one of the thirteen ranks in a deck.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// ParseRank converts an input token ("7", "10", "t", "q", "A"...) to a Rank.
func ParseRank(token string) (Rank, error) {
	r, ok := rankTokens[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return NullRank, fmt.Errorf("%w: %q", ErrUnknownRank, token)
	}
	return r, nil
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	NullSuit
)

var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var suitSymbols = []string{"♣", "♦", "♥", "♠", "?"}

func (s Suit) String() string {
	if s < Clubs || s > NullSuit {
		return "?"
	}
	return suitSymbols[s]
}

// Card represents a playing card.
// Cards are values: two cards are the same card if rank and suit match.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card. It panics on a rank or suit outside the deck.
func NewCard(rank Rank, suit Suit) Card {
	if !rank.Valid() || suit < Clubs || suit > Spades {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
