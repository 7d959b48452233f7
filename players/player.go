package players

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minaorangina/palace/deck"
	"github.com/minaorangina/palace/game"
)

type conn struct {
	In  *bufio.Reader
	Out io.Writer
}

// CLIPlayer is a game.Chooser for a person at a terminal.
// Bad input is reported and asked for again; it never reaches the game.
type CLIPlayer struct {
	Conn *conn
}

// NewCLIPlayer constructs a player that reads from in and writes to out
func NewCLIPlayer(in io.Reader, out io.Writer) *CLIPlayer {
	return &CLIPlayer{Conn: &conn{In: bufio.NewReader(in), Out: out}}
}

// readLine returns the next line of input, trimmed.
// ok is false once the input is exhausted.
func (c *conn) readLine() (string, bool) {
	line, err := c.In.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (p *CLIPlayer) ChooseSetup(player *game.Player, g *game.Game) {
	handleReorg(p.Conn, player)
}

// ChoosePlay asks for the values to play. If the input runs out,
// the first offered play is made.
func (p *CLIPlayer) ChoosePlay(player *game.Player, g *game.Game, combos [][]deck.Card) ([]deck.Card, bool) {
	SendText(p.Conn.Out, buildPileText(g))
	SendText(p.Conn.Out, buildCardDisplayText(player))
	SendText(p.Conn.Out, buildOptionsText(combos))

	for {
		SendText(p.Conn.Out, playPromptText)

		line, ok := p.Conn.readLine()
		if !ok {
			return combos[0], true
		}
		if strings.EqualFold(line, tacticalPickupToken) {
			return nil, false
		}

		chosen, err := choosePlay(player, combos, line)
		if err != nil {
			SendText(p.Conn.Out, retryText, err)
			continue
		}
		return chosen, true
	}
}

// ChooseUnseen asks for a 1-based position among the face-down cards.
func (p *CLIPlayer) ChooseUnseen(player *game.Player, g *game.Game) int {
	SendText(p.Conn.Out, buildPileText(g))

	for {
		SendText(p.Conn.Out, unseenPromptText, len(player.Unseen))

		line, ok := p.Conn.readLine()
		if !ok {
			return 0
		}

		idx, err := parsePosition(line, len(player.Unseen))
		if err != nil {
			SendText(p.Conn.Out, retryText, err)
			continue
		}
		return idx
	}
}

func choosePlay(player *game.Player, combos [][]deck.Card, input string) ([]deck.Card, error) {
	ranks, err := ParseValues(input)
	if err != nil {
		return nil, err
	}

	if _, _, err := takeByRank(player.Playable(), ranks); err != nil {
		return nil, err
	}

	chosen, ok := matchCombo(combos, ranks)
	if !ok {
		return nil, ErrNoMatchingPlay
	}
	return chosen, nil
}

func parsePosition(input string, n int) (int, error) {
	pos, err := strconv.Atoi(input)
	if err != nil || pos < unseenPositionOffset || pos > n {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, input)
	}
	return pos - unseenPositionOffset, nil
}
