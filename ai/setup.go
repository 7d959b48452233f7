package ai

import (
	"sort"

	"github.com/minaorangina/palace/deck"
	"github.com/minaorangina/palace/game"
)

const (
	numFaceUp          = 3
	highValueThreshold = deck.Nine
)

// ChooseSetupCards puts the three cards most worth keeping for later face up
// and leaves the rest in the hand. Eights and Tens go first, then high pairs,
// then single high cards, then pairs of Twos or Sevens, then whatever is highest.
func ChooseSetupCards(p *game.Player) {
	combined := append(p.Hand(), p.Seen...)
	order, groups := game.GroupByRank(combined)

	chosen := []deck.Card{}
	taken := map[deck.Rank]bool{}
	take := func(r deck.Rank) {
		if taken[r] {
			return
		}
		taken[r] = true
		chosen = append(chosen, groups[r]...)
	}
	full := func() bool { return len(chosen) >= numFaceUp }

	take(deck.Eight)
	take(deck.Ten)

	// sets of high cards, biggest then highest first
	if !full() {
		ranks := remainingRanks(order, taken, func(r deck.Rank) bool {
			return r >= highValueThreshold && len(groups[r]) >= 2
		})
		sortRanks(ranks, groups, true, true)
		for _, r := range ranks {
			take(r)
			if full() {
				break
			}
		}
	}

	// single high cards, highest first
	if !full() {
		ranks := remainingRanks(order, taken, func(r deck.Rank) bool {
			return r >= highValueThreshold
		})
		sortRanks(ranks, groups, false, true)
		for _, r := range ranks {
			take(r)
			if full() {
				break
			}
		}
	}

	// sets of Twos and Sevens, biggest then lowest first
	if !full() {
		ranks := remainingRanks(order, taken, func(r deck.Rank) bool {
			return (r == deck.Two || r == deck.Seven) && len(groups[r]) >= 2
		})
		sortRanks(ranks, groups, true, false)
		for _, r := range ranks {
			take(r)
			if full() {
				break
			}
		}
	}

	// anything else, highest first
	if !full() {
		ranks := remainingRanks(order, taken, func(deck.Rank) bool { return true })
		sortRanks(ranks, groups, false, true)
		for _, r := range ranks {
			take(r)
		}
	}

	if len(chosen) > numFaceUp {
		chosen = chosen[:numFaceUp]
	}

	hand := []deck.Card{}
	for _, c := range combined {
		if !contains(chosen, c) {
			hand = append(hand, c)
		}
	}

	faceUp := append([]deck.Card{}, chosen...)
	sort.SliceStable(faceUp, func(i, j int) bool { return faceUp[i].Rank < faceUp[j].Rank })

	p.Seen = faceUp
	p.SetHand(hand)
}

func remainingRanks(order []deck.Rank, taken map[deck.Rank]bool, keep func(deck.Rank) bool) []deck.Rank {
	ranks := []deck.Rank{}
	for _, r := range order {
		if !taken[r] && keep(r) {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// sortRanks orders ranks by group size (if bySize, biggest first) and then by rank.
func sortRanks(ranks []deck.Rank, groups map[deck.Rank][]deck.Card, bySize, highFirst bool) {
	sort.SliceStable(ranks, func(i, j int) bool {
		a, b := ranks[i], ranks[j]
		if bySize && len(groups[a]) != len(groups[b]) {
			return len(groups[a]) > len(groups[b])
		}
		if highFirst {
			return a > b
		}
		return a < b
	})
}

func contains(cards []deck.Card, target deck.Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}
