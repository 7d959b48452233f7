package game

import (
	"github.com/minaorangina/palace/deck"
)

func indexOf(cards []deck.Card, target deck.Card) int {
	for i, c := range cards {
		if c == target {
			return i
		}
	}
	return -1
}

func removeAt(cards []deck.Card, i int) []deck.Card {
	out := make([]deck.Card, 0, len(cards)-1)
	out = append(out, cards[:i]...)
	return append(out, cards[i+1:]...)
}

func containsCard(s []deck.Card, targets ...deck.Card) bool {
	for _, c := range s {
		for _, tg := range targets {
			if c == tg {
				return true
			}
		}
	}
	return false
}

func cardsUnique(cards []deck.Card) bool {
	seen := map[deck.Card]struct{}{}
	for _, c := range cards {
		if _, ok := seen[c]; ok {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}

// sameCards reports whether a and b hold the same cards, in any order.
func sameCards(a, b []deck.Card) bool {
	if len(a) != len(b) {
		return false
	}
	count := map[deck.Card]int{}
	for _, c := range a {
		count[c]++
	}
	for _, c := range b {
		count[c]--
		if count[c] < 0 {
			return false
		}
	}
	return true
}

func sameRank(cards []deck.Card) bool {
	for _, c := range cards {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

// GroupByRank groups cards by rank, keeping the order in which each rank
// first appears.
func GroupByRank(cards []deck.Card) ([]deck.Rank, map[deck.Rank][]deck.Card) {
	order := []deck.Rank{}
	groups := map[deck.Rank][]deck.Card{}
	for _, c := range cards {
		if _, ok := groups[c.Rank]; !ok {
			order = append(order, c.Rank)
		}
		groups[c.Rank] = append(groups[c.Rank], c)
	}
	return order, groups
}

func copyCards(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	copy(out, cards)
	return out
}
