package game

import (
	"github.com/minaorangina/palace/deck"
	"github.com/minaorangina/palace/protocol"
	uuid "github.com/satori/go.uuid"
)

// NewID constructs a game or player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Chooser makes a player's decisions. The Game calls it synchronously
// and applies whatever it returns.
type Chooser interface {
	// ChooseSetup moves three of the player's hand and seen cards into Seen,
	// leaving the rest in the hand.
	ChooseSetup(p *Player, g *Game)
	// ChoosePlay picks one of combos. Returning false picks up the pile instead.
	ChoosePlay(p *Player, g *Game, combos [][]deck.Card) ([]deck.Card, bool)
	// ChooseUnseen picks the index of the unseen card to turn over.
	ChooseUnseen(p *Player, g *Game) int
}

// Player represents a player in the game
type Player struct {
	PlayerCards
	ID      string
	Name    string
	Chooser Chooser

	// RequireEightFollowUp makes the player pick up the pile when their
	// only plays are Eights with nothing in hand to follow them.
	RequireEightFollowUp bool
}

// NewPlayer constructs a player with no cards
func NewPlayer(name string, chooser Chooser) *Player {
	return &Player{
		PlayerCards: *NewPlayerCards(nil, nil, nil),
		ID:          NewID(),
		Name:        name,
		Chooser:     chooser,
	}
}

func (p *Player) info() protocol.Player {
	if p == nil {
		return protocol.Player{}
	}
	return protocol.Player{PlayerID: p.ID, Name: p.Name}
}
