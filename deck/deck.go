package deck

import (
	"math/rand"
	"time"
)

// Deck represents a deck of cards
type Deck []Card

// New creates an unshuffled deck of 52 cards
func New() Deck {
	cards := Deck{}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards using a time-seeded source
func (d *Deck) Shuffle() {
	d.ShuffleWith(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// ShuffleWith shuffles the deck using r, so a seeded game can be replayed
func (d *Deck) ShuffleWith(r *rand.Rand) {
	actualDeck := *d
	r.Shuffle(len(actualDeck), func(i, j int) {
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	})
}

// Deal deals n number of cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := make([]Card, n)
	copy(subSlice, (*d)[startingIndex:numCardsInDeck])
	*d = (*d)[:startingIndex]
	return subSlice
}
