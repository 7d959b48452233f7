package protocol

import (
	"github.com/minaorangina/palace/deck"
)

type Player struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// OutboundMessage is a message from the Game to whoever is watching it.
// Nothing in the game depends on it being read.
type OutboundMessage struct {
	PlayerID    string      `json:"playerID"`
	Name        string      `json:"name"`
	Command     Cmd         `json:"command"`
	Message     string      `json:"message"`
	Cards       []deck.Card `json:"cards,omitempty"`
	Hand        []deck.Card `json:"hand"`
	Seen        []deck.Card `json:"seen"`
	UnseenCount int         `json:"unseenCount"`
	Pile        []deck.Card `json:"pile"`
	PileValue   int         `json:"pileValue"`
	DeckCount   int         `json:"deckCount"`
	CurrentTurn Player      `json:"currentTurn,omitempty"`
	NextTurn    Player      `json:"nextTurn,omitempty"`
	Opponents   []Opponent  `json:"opponents,omitempty"`
}

// Opponent is a representation of an opponent player
type Opponent struct {
	PlayerID    string      `json:"playerID"`
	Name        string      `json:"name"`
	HandCount   int         `json:"handCount"`
	Seen        []deck.Card `json:"seen"`
	UnseenCount int         `json:"unseenCount"`
}
