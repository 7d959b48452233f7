package players

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/minaorangina/palace/deck"
	"github.com/minaorangina/palace/game"
	utils "github.com/minaorangina/palace/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var c = deck.NewCard

func cards(cs ...deck.Card) []deck.Card {
	return cs
}

func cliPlayerWith(input string, hand, seen, unseen []deck.Card) (*game.Player, *bytes.Buffer) {
	out := &bytes.Buffer{}
	p := game.NewPlayer("Ana", NewCLIPlayer(strings.NewReader(input), out))
	p.PlayerCards = *game.NewPlayerCards(hand, seen, unseen)
	return p, out
}

func opponent() *game.Player {
	p := game.NewPlayer("Bo", nil)
	p.PlayerCards = *game.NewPlayerCards(
		cards(c(deck.Three, deck.Spades)),
		cards(c(deck.Four, deck.Spades), c(deck.Five, deck.Spades), c(deck.Six, deck.Spades)),
		cards(c(deck.Nine, deck.Spades), c(deck.Jack, deck.Spades), c(deck.Queen, deck.Spades)),
	)
	return p
}

func gameWith(pile []deck.Card, p *game.Player) *game.Game {
	return game.ExistingGame(game.GameOpts{Pile: pile, Players: []*game.Player{p, opponent()}})
}

func TestCLIPlayerChoosePlay(t *testing.T) {
	hand := cards(c(deck.Seven, deck.Clubs), c(deck.Seven, deck.Diamonds), c(deck.Nine, deck.Hearts))

	t.Run("plays a pair", func(t *testing.T) {
		p, _ := cliPlayerWith("77\n", hand, nil, nil)
		g := gameWith(nil, p)

		got, ok := p.Chooser.ChoosePlay(p, g, g.LegalCombinations(p))
		assert.True(t, ok)
		assert.Equal(t, cards(c(deck.Seven, deck.Clubs), c(deck.Seven, deck.Diamonds)), got)
	})

	t.Run("tactical pickup", func(t *testing.T) {
		p, _ := cliPlayerWith("TP\n", hand, nil, nil)
		g := gameWith(nil, p)

		got, ok := p.Chooser.ChoosePlay(p, g, g.LegalCombinations(p))
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("asks again after bad input", func(t *testing.T) {
		p, out := cliPlayerWith("x\n5\n99\n9\n", hand, nil, nil)
		g := gameWith(nil, p)

		got, ok := p.Chooser.ChoosePlay(p, g, g.LegalCombinations(p))
		assert.True(t, ok)
		assert.Equal(t, cards(c(deck.Nine, deck.Hearts)), got)
		assert.Equal(t, 3, strings.Count(out.String(), "Try again"))
		assert.Contains(t, out.String(), ErrValueNotAvailable.Error())
	})

	t.Run("asks again for a card that cannot go on the pile", func(t *testing.T) {
		hand := cards(c(deck.Seven, deck.Clubs), c(deck.Nine, deck.Hearts), c(deck.King, deck.Spades))
		p, out := cliPlayerWith("9\n7\n", hand, nil, nil)
		g := gameWith(cards(c(deck.King, deck.Hearts)), p)

		got, ok := p.Chooser.ChoosePlay(p, g, g.LegalCombinations(p))
		assert.True(t, ok)
		assert.Equal(t, cards(c(deck.Seven, deck.Clubs)), got)
		assert.Contains(t, out.String(), ErrNoMatchingPlay.Error())
	})

	t.Run("plays face-up cards by value", func(t *testing.T) {
		seen := cards(c(deck.Jack, deck.Clubs), c(deck.Jack, deck.Hearts), c(deck.Four, deck.Clubs))
		p, _ := cliPlayerWith("j j\n", nil, seen, cards(c(deck.Two, deck.Clubs)))
		g := gameWith(nil, p)

		got, ok := p.Chooser.ChoosePlay(p, g, g.LegalCombinations(p))
		assert.True(t, ok)
		assert.ElementsMatch(t, cards(c(deck.Jack, deck.Clubs), c(deck.Jack, deck.Hearts)), got)
	})

	t.Run("plays the first option when input runs out", func(t *testing.T) {
		p, _ := cliPlayerWith("", hand, nil, nil)
		g := gameWith(nil, p)
		combos := g.LegalCombinations(p)

		got, ok := p.Chooser.ChoosePlay(p, g, combos)
		assert.True(t, ok)
		assert.Equal(t, combos[0], got)
	})
}

func TestCLIPlayerChooseUnseen(t *testing.T) {
	unseen := cards(c(deck.Two, deck.Clubs), c(deck.Three, deck.Clubs), c(deck.Four, deck.Clubs))

	t.Run("positions start at one", func(t *testing.T) {
		p, out := cliPlayerWith("0\n4\nabc\n2\n", nil, nil, unseen)
		g := gameWith(nil, p)

		utils.AssertEqual(t, p.Chooser.ChooseUnseen(p, g), 1)
		assert.Equal(t, 3, strings.Count(out.String(), "Try again"))
	})

	t.Run("first card when input runs out", func(t *testing.T) {
		p, _ := cliPlayerWith("", nil, nil, unseen)
		g := gameWith(nil, p)

		utils.AssertEqual(t, p.Chooser.ChooseUnseen(p, g), 0)
	})

	t.Run("bad positions", func(t *testing.T) {
		for _, input := range []string{"", "0", "-1", "4", "one"} {
			_, err := parsePosition(input, 3)
			assert.True(t, errors.Is(err, ErrInvalidPosition), input)
		}
	})
}

func TestCLIPlayerChooseSetup(t *testing.T) {
	hand := cards(c(deck.Three, deck.Clubs), c(deck.King, deck.Clubs), c(deck.Nine, deck.Diamonds))
	seen := cards(c(deck.King, deck.Hearts), c(deck.Four, deck.Hearts), c(deck.Five, deck.Hearts))
	unseen := cards(c(deck.Two, deck.Spades), c(deck.Ace, deck.Spades), c(deck.Six, deck.Spades))

	t.Run("choose face-up cards", func(t *testing.T) {
		p, out := cliPlayerWith("y\nk k 9\n", hand, seen, unseen)
		p.Chooser.ChooseSetup(p, nil)

		assert.ElementsMatch(t, cards(c(deck.King, deck.Clubs), c(deck.King, deck.Hearts), c(deck.Nine, deck.Diamonds)), p.Seen)
		assert.Equal(t, cards(c(deck.Three, deck.Clubs), c(deck.Four, deck.Hearts), c(deck.Five, deck.Hearts)), p.Hand())
		assert.Contains(t, out.String(), "Thanks, Ana")
	})

	t.Run("keep cards", func(t *testing.T) {
		p, out := cliPlayerWith("N\n", hand, seen, unseen)
		p.Chooser.ChooseSetup(p, nil)

		assert.Equal(t, seen, p.Seen)
		assert.ElementsMatch(t, hand, p.Hand())
		assert.Contains(t, out.String(), noChangeText)
	})

	t.Run("gives up after too many bad answers", func(t *testing.T) {
		p, out := cliPlayerWith("maybe\ny\nk\n2 2 2\nk k k\n", hand, seen, unseen)
		p.Chooser.ChooseSetup(p, nil)

		assert.Equal(t, seen, p.Seen)
		assert.Contains(t, out.String(), retryYesNoText)
		assert.Contains(t, out.String(), ErrWrongCount.Error())
		assert.Contains(t, out.String(), maxRetriesText)
	})

	t.Run("keeps cards when input runs out", func(t *testing.T) {
		p, _ := cliPlayerWith("y\n", hand, seen, unseen)
		p.Chooser.ChooseSetup(p, nil)

		assert.Equal(t, seen, p.Seen)
	})
}

func TestCLIPlayersPlayAGame(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	out := &bytes.Buffer{}

	players := []*game.Player{
		game.NewPlayer("Ana", NewCLIPlayer(strings.NewReader("n\n"), out)),
		game.NewPlayer("Bo", NewCLIPlayer(strings.NewReader(""), out)),
	}
	g, err := game.NewGame(players, game.GameOpts{Rand: r, MaxTurns: 1000, Notifier: NewDisplay(out)})
	require.NoError(t, err)

	winner, err := g.Run()
	if errors.Is(err, game.ErrTurnLimit) {
		t.Skip("no winner within the turn limit")
	}
	require.NoError(t, err)
	assert.NotNil(t, winner)
	assert.Contains(t, out.String(), "Game over!")
}
