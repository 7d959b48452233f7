package game

import (
	"fmt"

	"github.com/minaorangina/palace/deck"
	"github.com/minaorangina/palace/protocol"
)

// ApplyPlay moves cards from p onto the pile and reports whether p
// takes another turn. The last card played decides what happens:
// a Ten or four of a kind burns the pile, an Eight keeps the turn.
//
// cards must come from LegalCombinations; a card p does not hold panics.
func (g *Game) ApplyPlay(p *Player, cards []deck.Card) bool {
	if len(cards) == 0 {
		panic(fmt.Sprintf("%s played no cards", p.Name))
	}
	for _, c := range cards {
		if !p.remove(c) {
			panic(fmt.Sprintf("%s does not hold %s", p.Name, c))
		}
	}

	g.Pile = append(g.Pile, cards...)
	governing := cards[len(cards)-1]

	if governing.Rank == deck.Ten || isBurn(g.Pile) {
		g.burn(p)
		return true
	}

	return governing.Rank == deck.Eight
}

func (g *Game) burn(p *Player) {
	g.notify(g.buildMessage(p, protocol.Burn, g.Pile,
		fmt.Sprintf("%s burned the pile! %d cards removed.", p.Name, len(g.Pile))))

	// burnt cards are kept out of play rather than dropped
	g.Burnt = append(g.Burnt, g.Pile...)
	g.Pile = []deck.Card{}
}

// PickUpPile moves the whole pile into p's hand.
func (g *Game) PickUpPile(p *Player) {
	g.notify(g.buildMessage(p, protocol.PickUp, g.Pile,
		fmt.Sprintf("%s picks up the pile!", p.Name)))

	p.AddToHand(g.Pile...)
	g.Pile = []deck.Card{}
}

// DrawUp replenishes p's hand from the deck, up to three cards.
func (g *Game) DrawUp(p *Player) {
	drawn := []deck.Card{}
	for len(p.hand)+len(drawn) < numCardsInGroup && len(g.Deck) > 0 {
		drawn = append(drawn, g.Deck.Deal(1)...)
	}
	if len(drawn) == 0 {
		return
	}

	p.AddToHand(drawn...)
	g.notify(g.buildMessage(p, protocol.ReplenishHand, drawn,
		fmt.Sprintf("%s draws %d card(s).", p.Name, len(drawn))))
}

// flipUnseen plays a face-down card that turned out not to be playable:
// it joins the pile, which the player then picks up.
func (g *Game) flipUnseen(p *Player, card deck.Card) {
	if !p.remove(card) {
		panic(fmt.Sprintf("%s does not hold %s", p.Name, card))
	}
	g.Pile = append(g.Pile, card)
	g.PickUpPile(p)
}
