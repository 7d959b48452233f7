package game

import (
	"github.com/minaorangina/palace/deck"
)

var c = deck.NewCard

func cards(cs ...deck.Card) []deck.Card {
	return cs
}

// scriptedChooser plays the first offered combination unless told otherwise
type scriptedChooser struct {
	pickUp bool
	play   []deck.Card
	unseen int
	setup  func(p *Player)
}

func (s *scriptedChooser) ChooseSetup(p *Player, g *Game) {
	if s.setup != nil {
		s.setup(p)
	}
}

func (s *scriptedChooser) ChoosePlay(p *Player, g *Game, combos [][]deck.Card) ([]deck.Card, bool) {
	if s.pickUp {
		return nil, false
	}
	if s.play != nil {
		return s.play, true
	}
	return combos[0], true
}

func (s *scriptedChooser) ChooseUnseen(p *Player, g *Game) int {
	return s.unseen
}

func playerWith(name string, hand, seen, unseen []deck.Card) *Player {
	p := NewPlayer(name, &scriptedChooser{})
	p.PlayerCards = *NewPlayerCards(hand, seen, unseen)
	return p
}

// gameWith builds an in-progress game where it is the first player's turn
func gameWith(pile []deck.Card, players ...*Player) *Game {
	return ExistingGame(GameOpts{Pile: pile, Players: players})
}

func opponent() *Player {
	return playerWith("opponent",
		cards(c(deck.Three, deck.Clubs)),
		cards(c(deck.Four, deck.Clubs), c(deck.Five, deck.Clubs), c(deck.Six, deck.Clubs)),
		cards(c(deck.Nine, deck.Clubs), c(deck.Jack, deck.Clubs), c(deck.Queen, deck.Clubs)),
	)
}
