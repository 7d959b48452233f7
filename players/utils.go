package players

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minaorangina/palace/deck"
)

var (
	ErrNoValues          = errors.New("no card values entered")
	ErrWrongCount        = errors.New("wrong number of card values")
	ErrValueNotAvailable = errors.New("you do not have that card")
	ErrNoMatchingPlay    = errors.New("those cards cannot be played together")
	ErrInvalidPosition   = errors.New("no face-down card in that position")
)

// ParseValues reads card values typed by a player.
// Values may be separated by spaces or run together, so
// "7 7", "77", "10 10", "1010" and "tt" are all pairs.
func ParseValues(input string) ([]deck.Rank, error) {
	ranks := []deck.Rank{}

	for _, token := range strings.Fields(strings.ToLower(input)) {
		for rest := token; rest != ""; {
			n := 1
			if strings.HasPrefix(rest, "10") {
				n = 2
			}

			r, err := deck.ParseRank(rest[:n])
			if err != nil {
				return nil, fmt.Errorf("%q: %w", token, err)
			}

			ranks = append(ranks, r)
			rest = rest[n:]
		}
	}

	if len(ranks) == 0 {
		return nil, ErrNoValues
	}

	return ranks, nil
}

// takeByRank picks one card per rank from cards, never the same card twice.
// It returns the picked cards and the ones left over.
func takeByRank(cards []deck.Card, ranks []deck.Rank) (taken, rest []deck.Card, err error) {
	used := make([]bool, len(cards))

	for _, r := range ranks {
		found := false
		for i, c := range cards {
			if !used[i] && c.Rank == r {
				used[i], found = true, true
				taken = append(taken, c)
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("%w: %s", ErrValueNotAvailable, r)
		}
	}

	for i, c := range cards {
		if !used[i] {
			rest = append(rest, c)
		}
	}

	return taken, rest, nil
}

// matchCombo finds the first combo whose values are exactly ranks.
func matchCombo(combos [][]deck.Card, ranks []deck.Rank) ([]deck.Card, bool) {
	for _, combo := range combos {
		if len(combo) != len(ranks) {
			continue
		}
		if _, rest, err := takeByRank(combo, ranks); err == nil && len(rest) == 0 {
			return combo, true
		}
	}
	return nil, false
}

func isYes(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true
	}
	return false
}

func isNo(s string) bool {
	switch strings.ToLower(s) {
	case "n", "no":
		return true
	}
	return false
}
