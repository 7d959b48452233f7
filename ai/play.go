package ai

import (
	"github.com/minaorangina/palace/deck"
	"github.com/minaorangina/palace/game"
)

const (
	lowHandSize  = 3
	bigHandSize  = 10
	sevenTrigger = int(deck.Ace)
	twoTrigger   = int(deck.Ten)
)

// ChooseTurnPlay picks one of combos for p, or nil if there is nothing worth playing.
// pileValue is the value the pile must be met with.
func ChooseTurnPlay(combos [][]deck.Card, pileValue int, p *game.Player, g *game.Game) []deck.Card {
	if len(combos) == 0 {
		return nil
	}

	var ordinary, power, eights [][]deck.Card
	for _, combo := range combos {
		switch lead := combo[0]; {
		case lead.Rank == deck.Eight:
			eights = append(eights, combo)
		case game.IsPower(lead.Rank):
			power = append(power, combo)
		case game.BaseValue(lead) >= pileValue:
			ordinary = append(ordinary, combo)
		}
	}

	// finish off four of a kind
	if r, ok := threeOnTop(g.Pile); ok {
		if matching := withRank(ordinary, r); len(matching) > 0 {
			return first(matching, smaller)
		}
	}

	if opponentOnLastCard(p, g) && len(ordinary) > 0 {
		return first(ordinary, func(a, b []deck.Card) bool {
			if a[0].Rank != b[0].Rank {
				return a[0].Rank > b[0].Rank
			}
			return len(a) > len(b)
		})
	}

	if len(p.Hand()) <= lowHandSize && len(eights) > 0 {
		return first(eights, smaller)
	}

	if pileValue == sevenTrigger {
		if sevens := withRank(power, deck.Seven); len(sevens) > 0 {
			return first(sevens, smaller)
		}
	}

	if pileValue >= twoTrigger {
		if twos := withRank(power, deck.Two); len(twos) > 0 {
			return first(twos, smaller)
		}
	}

	if pileValue <= int(deck.Nine) && len(ordinary) > 0 {
		return first(ordinary, func(a, b []deck.Card) bool {
			if a[0].Rank != b[0].Rank {
				return a[0].Rank < b[0].Rank
			}
			return len(a) < len(b)
		})
	}

	if len(p.Hand()) > bigHandSize && len(ordinary) > 0 {
		return first(ordinary, func(a, b []deck.Card) bool { return len(a) > len(b) })
	}

	if len(ordinary) > 0 {
		return first(ordinary, func(a, b []deck.Card) bool {
			if a[0].Rank != b[0].Rank {
				return a[0].Rank < b[0].Rank
			}
			return len(a) > len(b)
		})
	}

	if len(power) > 0 {
		return first(power, func(a, b []deck.Card) bool { return a[0].Rank < b[0].Rank })
	}

	if len(eights) > 0 {
		return first(eights, smaller)
	}

	return nil
}

// first returns the earliest combo that no later combo is better than.
func first(combos [][]deck.Card, better func(a, b []deck.Card) bool) []deck.Card {
	best := combos[0]
	for _, combo := range combos[1:] {
		if better(combo, best) {
			best = combo
		}
	}
	return best
}

func smaller(a, b []deck.Card) bool {
	return len(a) < len(b)
}

func withRank(combos [][]deck.Card, r deck.Rank) [][]deck.Card {
	out := [][]deck.Card{}
	for _, combo := range combos {
		if combo[0].Rank == r {
			out = append(out, combo)
		}
	}
	return out
}

func threeOnTop(pile []deck.Card) (deck.Rank, bool) {
	if len(pile) < 3 {
		return deck.NullRank, false
	}
	top := pile[len(pile)-3:]
	if top[0].Rank == top[1].Rank && top[1].Rank == top[2].Rank {
		return top[0].Rank, true
	}
	return deck.NullRank, false
}

func opponentOnLastCard(p *game.Player, g *game.Game) bool {
	for _, o := range g.Opponents(p) {
		if len(o.Unseen) == 1 && len(o.Hand()) == 0 && len(o.Seen) == 0 {
			return true
		}
	}
	return false
}
