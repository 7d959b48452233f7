package game

import (
	"github.com/minaorangina/palace/deck"
	"github.com/minaorangina/palace/protocol"
)

func (g *Game) notify(msg protocol.OutboundMessage) {
	if g.notifier != nil {
		g.notifier(msg)
	}
}

func (g *Game) buildBaseMessage(p *Player) protocol.OutboundMessage {
	msg := protocol.OutboundMessage{
		Pile:        copyCards(g.Pile),
		PileValue:   g.PileValue(),
		DeckCount:   len(g.Deck),
		CurrentTurn: g.CurrentPlayer().info(),
		NextTurn:    g.NextPlayer().info(),
	}
	if p == nil {
		return msg
	}

	msg.PlayerID = p.ID
	msg.Name = p.Name
	msg.Hand = p.Hand()
	msg.Seen = copyCards(p.Seen)
	msg.UnseenCount = len(p.Unseen)
	msg.Opponents = g.buildOpponents(p)

	return msg
}

func (g *Game) buildOpponents(p *Player) []protocol.Opponent {
	opponents := []protocol.Opponent{}

	for _, o := range g.Opponents(p) {
		opponents = append(opponents, protocol.Opponent{
			PlayerID:    o.ID,
			Name:        o.Name,
			HandCount:   len(o.hand),
			Seen:        copyCards(o.Seen),
			UnseenCount: len(o.Unseen),
		})
	}

	return opponents
}

func (g *Game) buildMessage(p *Player, cmd protocol.Cmd, cards []deck.Card, text string) protocol.OutboundMessage {
	if g.notifier == nil {
		return protocol.OutboundMessage{}
	}
	msg := g.buildBaseMessage(p)
	msg.Command = cmd
	msg.Cards = copyCards(cards)
	msg.Message = text
	return msg
}
