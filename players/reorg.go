package players

import (
	"github.com/minaorangina/palace/deck"
	"github.com/minaorangina/palace/game"
)

var retries = 3

// handleReorg shows the player their cards and, if they want to,
// lets them choose which three go face up.
func handleReorg(conn *conn, p *game.Player) {
	SendText(conn.Out, "%s, here are your cards:\n\n", p.Name)
	SendText(conn.Out, buildCardDisplayText(p))

	if !offerCardSwitch(conn) {
		SendText(conn.Out, noChangeText)
		return
	}

	if !reorganiseCards(conn, p) {
		return
	}

	SendText(conn.Out, stateOfCardsText, p.Name)
	SendText(conn.Out, buildCardDisplayText(p))
}

func offerCardSwitch(conn *conn) bool {
	for {
		SendText(conn.Out, reorgInviteText)

		answer, ok := conn.readLine()
		switch {
		case !ok:
			return false
		case isYes(answer):
			return true
		case isNo(answer):
			return false
		}
		SendText(conn.Out, retryYesNoText)
	}
}

func reorganiseCards(conn *conn, p *game.Player) bool {
	for retriesLeft := retries; retriesLeft > 0; retriesLeft-- {
		SendText(conn.Out, reorgPromptText)

		line, ok := conn.readLine()
		if !ok {
			SendText(conn.Out, noChangeText)
			return false
		}

		seen, hand, err := chooseSeen(p, line)
		if err != nil {
			SendText(conn.Out, retryText, err)
			continue
		}

		p.Seen = seen
		p.SetHand(hand)
		return true
	}

	SendText(conn.Out, maxRetriesText)
	return false
}

// chooseSeen splits the player's hand and seen cards into the three
// named by input and the rest.
func chooseSeen(p *game.Player, input string) (seen, hand []deck.Card, err error) {
	ranks, err := ParseValues(input)
	if err != nil {
		return nil, nil, err
	}
	if len(ranks) != 3 {
		return nil, nil, ErrWrongCount
	}

	return takeByRank(append(p.Hand(), p.Seen...), ranks)
}
