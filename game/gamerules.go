package game

import (
	"github.com/minaorangina/palace/deck"
)

const (
	minPlayers      = 2
	maxPlayers      = 4
	burnNum         = 4
	numCardsInGroup = 3
)

// IsSpecial reports whether cards of rank r ignore the pile value:
// 2 resets, 7 and 8 are see-through, 10 burns.
func IsSpecial(r deck.Rank) bool {
	switch r {
	case deck.Two, deck.Seven, deck.Eight, deck.Ten:
		return true
	}
	return false
}

// IsPower reports whether r is a special rank other than the Eight.
func IsPower(r deck.Rank) bool {
	return IsSpecial(r) && r != deck.Eight
}

func isTransparent(r deck.Rank) bool {
	return r == deck.Seven || r == deck.Eight || r == deck.Ten
}

// BaseValue is a card's value when compared against the pile.
// Twos and Tens count as zero.
func BaseValue(c deck.Card) int {
	if c.Rank == deck.Two || c.Rank == deck.Ten {
		return 0
	}
	return int(c.Rank)
}

// TopPileRank returns the rank of the topmost card that is not a 7, 8 or 10.
// ok is false when the pile is empty or holds only those ranks.
func TopPileRank(pile []deck.Card) (r deck.Rank, ok bool) {
	for i := len(pile) - 1; i >= 0; i-- {
		if !isTransparent(pile[i].Rank) {
			return pile[i].Rank, true
		}
	}
	return deck.NullRank, false
}

// TopPileValue is the value a play must meet or beat. Zero means anything goes.
func TopPileValue(pile []deck.Card) int {
	r, ok := TopPileRank(pile)
	if !ok {
		return 0
	}
	return int(r)
}

// underlyingValue is the pile value beneath the topmost card.
func underlyingValue(pile []deck.Card) int {
	if len(pile) == 0 {
		return 0
	}
	return TopPileValue(pile[:len(pile)-1])
}

// Rules holds the rule variations a game can be played with.
type Rules struct {
	// LooseSeen allows a face-up play if it contains any special card,
	// even when other cards in it are below the pile value.
	LooseSeen bool
}

func canPlay(cards, pile []deck.Card, state PlayerCardState, rules Rules) bool {
	if len(cards) == 0 {
		return false
	}

	switch state {
	case PlayHand:
		return canPlayFromHand(cards, pile)
	case PlaySeen:
		return canPlayFromTable(cards, pile, rules)
	case PlayUnseen:
		// unseen cards are played blind, one at a time
		if len(cards) == 1 {
			return canPlayFromHand(cards, pile)
		}
		return canPlayFromTable(cards, pile, rules)
	}

	return false
}

func canPlayFromHand(cards, pile []deck.Card) bool {
	eights, nonEights := []deck.Card{}, []deck.Card{}
	for _, c := range cards {
		if c.Rank == deck.Eight {
			eights = append(eights, c)
		} else {
			nonEights = append(nonEights, c)
		}
	}

	// Eights can always be played
	if len(nonEights) == 0 {
		return true
	}

	// Eights with a single follow-up card, which must beat what's beneath the top card
	if len(eights) > 0 {
		if len(nonEights) > 1 {
			return false
		}
		follow := nonEights[0]
		return IsPower(follow.Rank) || BaseValue(follow) >= underlyingValue(pile)
	}

	if !sameRank(cards) {
		return false
	}

	return IsSpecial(cards[0].Rank) || BaseValue(cards[0]) >= TopPileValue(pile)
}

func canPlayFromTable(cards, pile []deck.Card, rules Rules) bool {
	pileValue := TopPileValue(pile)
	hasSpecial := false
	allQualify := true

	for _, c := range cards {
		if IsSpecial(c.Rank) {
			hasSpecial = true
			continue
		}
		if BaseValue(c) < pileValue {
			allQualify = false
		}
	}

	if rules.LooseSeen {
		return hasSpecial || allQualify
	}
	return allQualify
}

func legalCombinations(cards, pile []deck.Card, state PlayerCardState, rules Rules) [][]deck.Card {
	moves := [][]deck.Card{}

	switch state {
	case PlayHand:
		// only cards of the same rank can be played together
		order, groups := GroupByRank(cards)
		for _, r := range order {
			group := groups[r]
			for size := 1; size <= len(group); size++ {
				combo := copyCards(group[:size])
				if canPlay(combo, pile, state, rules) {
					moves = append(moves, combo)
				}
			}
		}

	case PlaySeen, PlayUnseen:
		for size := 1; size <= len(cards); size++ {
			for _, combo := range combinations(cards, size) {
				if canPlay(combo, pile, state, rules) {
					moves = append(moves, combo)
				}
			}
		}
	}

	return moves
}

// combinations returns every way of choosing size cards, preserving their order.
func combinations(cards []deck.Card, size int) [][]deck.Card {
	out := [][]deck.Card{}

	var build func(start int, combo []deck.Card)
	build = func(start int, combo []deck.Card) {
		if len(combo) == size {
			out = append(out, copyCards(combo))
			return
		}
		for i := start; i < len(cards); i++ {
			build(i+1, append(combo, cards[i]))
		}
	}
	build(0, make([]deck.Card, 0, size))

	return out
}

func isBurn(pile []deck.Card) bool {
	if len(pile) < burnNum {
		return false
	}
	return sameRank(pile[len(pile)-burnNum:])
}

// PileValue is the value the current pile must be met with.
func (g *Game) PileValue() int {
	return TopPileValue(g.Pile)
}

// CanPlay reports whether the current player may play cards on the pile.
func (g *Game) CanPlay(cards []deck.Card) bool {
	p := g.CurrentPlayer()
	if p == nil {
		return false
	}
	return canPlay(cards, g.Pile, p.State(), g.Rules)
}

// LegalCombinations lists every play available to p from the group of
// cards it must currently play from.
func (g *Game) LegalCombinations(p *Player) [][]deck.Card {
	return legalCombinations(p.Playable(), g.Pile, p.State(), g.Rules)
}

// OnlyUnresolvableEights reports whether p's only plays are Eights
// with nothing left in hand to follow them.
func (g *Game) OnlyUnresolvableEights(p *Player, combos [][]deck.Card) bool {
	pileValue := g.PileValue()
	underlying := underlyingValue(g.Pile)
	hasEight := false

	for _, combo := range combos {
		switch {
		case containsRank(combo, IsPower):
			return false

		case containsRank(combo, func(r deck.Rank) bool { return r == deck.Eight }):
			hasEight = true
			for _, c := range p.Hand() {
				if containsCard(combo, c) {
					continue
				}
				if IsSpecial(c.Rank) || BaseValue(c) >= underlying {
					return false
				}
			}

		case allAtLeast(combo, pileValue):
			return false

		case len(combo) >= burnNum && sameRank(combo):
			return false
		}
	}

	return hasEight
}

func containsRank(cards []deck.Card, match func(deck.Rank) bool) bool {
	for _, c := range cards {
		if match(c.Rank) {
			return true
		}
	}
	return false
}

func allAtLeast(cards []deck.Card, value int) bool {
	for _, c := range cards {
		if BaseValue(c) < value {
			return false
		}
	}
	return true
}
