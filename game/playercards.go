package game

import (
	"sort"

	"github.com/minaorangina/palace/deck"
)

// PlayerCards holds a player's three groups of cards.
// The hand is unexported so that it can only change through methods
// that keep it sorted by rank.
type PlayerCards struct {
	hand   []deck.Card
	Seen   []deck.Card
	Unseen []deck.Card
}

func NewPlayerCards(hand, seen, unseen []deck.Card) *PlayerCards {
	if seen == nil {
		seen = []deck.Card{}
	}
	if unseen == nil {
		unseen = []deck.Card{}
	}

	pc := &PlayerCards{
		Seen:   seen,
		Unseen: unseen,
	}
	pc.SetHand(hand)

	return pc
}

// Hand returns a copy of the hand, lowest rank first.
func (pc *PlayerCards) Hand() []deck.Card {
	hand := make([]deck.Card, len(pc.hand))
	copy(hand, pc.hand)
	return hand
}

// SetHand replaces the hand.
func (pc *PlayerCards) SetHand(cards []deck.Card) {
	hand := make([]deck.Card, len(cards))
	copy(hand, cards)
	sortByRank(hand)
	pc.hand = hand
}

// AddToHand adds cards to the hand.
func (pc *PlayerCards) AddToHand(cards ...deck.Card) {
	pc.SetHand(append(pc.Hand(), cards...))
}

// State derives which group of cards must be played from next.
func (pc *PlayerCards) State() PlayerCardState {
	switch {
	case len(pc.hand) > 0:
		return PlayHand
	case len(pc.Seen) > 0:
		return PlaySeen
	case len(pc.Unseen) > 0:
		return PlayUnseen
	}
	return Finished
}

// Playable returns the cards of the group the player must play from.
func (pc *PlayerCards) Playable() []deck.Card {
	switch pc.State() {
	case PlayHand:
		return pc.Hand()
	case PlaySeen:
		return pc.Seen
	case PlayUnseen:
		return pc.Unseen
	}
	return nil
}

func (pc *PlayerCards) Total() int {
	return len(pc.hand) + len(pc.Seen) + len(pc.Unseen)
}

func (pc *PlayerCards) Finished() bool {
	return pc.Total() == 0
}

// remove takes a card out of the hand, else the seen cards, else the unseen cards.
func (pc *PlayerCards) remove(card deck.Card) bool {
	if i := indexOf(pc.hand, card); i >= 0 {
		pc.hand = removeAt(pc.hand, i)
		return true
	}
	if i := indexOf(pc.Seen, card); i >= 0 {
		pc.Seen = removeAt(pc.Seen, i)
		return true
	}
	if i := indexOf(pc.Unseen, card); i >= 0 {
		pc.Unseen = removeAt(pc.Unseen, i)
		return true
	}
	return false
}

func (pc *PlayerCards) all() []deck.Card {
	cards := pc.Hand()
	cards = append(cards, pc.Seen...)
	return append(cards, pc.Unseen...)
}

func playerCardsValid(cards *PlayerCards) bool {
	if cards == nil {
		return false
	}

	if len(cards.Seen) > numCardsInGroup {
		return false
	}

	if len(cards.Unseen) > numCardsInGroup {
		return false
	}

	if len(cards.Unseen) < numCardsInGroup && len(cards.Seen) != 0 {
		return false
	}

	return cardsUnique(cards.all())
}

func sortByRank(cards []deck.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Rank < cards[j].Rank
	})
}
