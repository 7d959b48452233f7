package players

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/palace/deck"
	"github.com/minaorangina/palace/game"
	"github.com/minaorangina/palace/protocol"
)

const (
	reorgInviteText      = "You may choose which of your visible cards go face up.\nWould you like to choose? [y/n] "
	retryYesNoText       = "Invalid choice. Please enter \"y\" for \"yes\" or \"n\" for \"no\"\n"
	noChangeText         = "Ok, I will leave your cards as they are.\n"
	maxRetriesText       = "\nMax retries exceeded: I will leave your cards as they are.\n"
	stateOfCardsText     = "\nThanks, %s. Here is what your cards look like now:\n\n"
	reorgPromptText      = "\nEnter the three values you want face up (e.g. \"k k 9\"): "
	playPromptText       = "Enter the values to play, or \"tp\" to pick up the pile: "
	unseenPromptText     = "Choose a face-down card (1-%d): "
	retryText            = "%s. Try again.\n"
	tacticalPickupToken  = "tp"
	unseenPositionOffset = 1
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func cardList(cards []deck.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}

func buildCardDisplayText(p *game.Player) string {
	hand := p.Hand()
	handText := fmt.Sprintf("In your hand, you have %d card(s) 🤲\n%s\n", len(hand), cardList(hand))
	seenText := fmt.Sprintf("On the table, face up: %s\n", cardList(p.Seen))
	unseenText := fmt.Sprintf("Underneath, %d card(s) you can't see 🙈\n", len(p.Unseen))
	return handText + seenText + unseenText
}

func buildPileText(g *game.Game) string {
	if len(g.Pile) == 0 {
		return "The pile is empty.\n"
	}
	top := g.Pile[len(g.Pile)-1]
	return fmt.Sprintf("Pile: %d card(s), top %s, to beat: %d\n", len(g.Pile), top, g.PileValue())
}

func buildOptionsText(combos [][]deck.Card) string {
	options := make([]string, len(combos))
	for i, combo := range combos {
		options[i] = "[" + cardList(combo) + "]"
	}
	return "You can play: " + strings.Join(options, " ") + "\n"
}

// NewDisplay returns a game.Notifier that writes each game event to w.
func NewDisplay(w io.Writer) game.Notifier {
	return func(msg protocol.OutboundMessage) {
		switch msg.Command {
		case protocol.Turn:
			SendText(w, "\n--- %s (%d in deck) ---\n", msg.Message, msg.DeckCount)
			for _, o := range msg.Opponents {
				SendText(w, "%s: %d in hand, face up %s, %d face down\n",
					o.Name, o.HandCount, cardList(o.Seen), o.UnseenCount)
			}
		case protocol.EndOfTurn:
			return
		default:
			if msg.Message != "" {
				SendText(w, "%s\n", msg.Message)
			}
		}
	}
}
