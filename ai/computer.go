package ai

import (
	"math/rand"
	"time"

	"github.com/minaorangina/palace/deck"
	"github.com/minaorangina/palace/game"
)

// Computer is a game.Chooser that plays by the heuristics in this package.
type Computer struct {
	rand *rand.Rand
}

// NewComputer returns a Computer. A nil r is seeded from the clock.
func NewComputer(r *rand.Rand) *Computer {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Computer{rand: r}
}

// ChooseSetup puts the best three of p's visible cards face up.
func (c *Computer) ChooseSetup(p *game.Player, g *game.Game) {
	ChooseSetupCards(p)
}

// ChoosePlay picks a combination with ChooseTurnPlay, picking up when there is none.
func (c *Computer) ChoosePlay(p *game.Player, g *game.Game, combos [][]deck.Card) ([]deck.Card, bool) {
	chosen := ChooseTurnPlay(combos, g.PileValue(), p, g)
	return chosen, chosen != nil
}

// ChooseUnseen turns over a face-down card at random; there is nothing to go on.
func (c *Computer) ChooseUnseen(p *game.Player, g *game.Game) int {
	return c.rand.Intn(len(p.Unseen))
}
