package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/minaorangina/palace/deck"
	"github.com/minaorangina/palace/protocol"
)

var (
	ErrNilGame          = errors.New("game is nil")
	ErrTooFewPlayers    = errors.New("minimum of 2 players required")
	ErrTooManyPlayers   = errors.New("maximum of 4 players allowed")
	ErrNoChooser        = errors.New("player has no chooser")
	ErrInvalidChoice    = errors.New("chooser picked a play that was not offered")
	ErrInvalidSetup     = errors.New("setup did not leave three valid face-up cards")
	ErrGameNotStarted   = errors.New("game has not been set up")
	ErrGameAlreadySetUp = errors.New("game has already been set up")
	ErrGameOver         = errors.New("game is already over")
	ErrTurnLimit        = errors.New("turn limit reached without a winner")
)

// Notifier receives a message for everything that happens in a game.
type Notifier func(protocol.OutboundMessage)

// Game is the state of a game of Shed. Everything that changes during
// a game lives here; nothing is shared between games.
type Game struct {
	ID             string
	Deck           deck.Deck
	Pile           []deck.Card
	Burnt          []deck.Card
	Players        []*Player
	CurrentTurnIdx int
	Rules          Rules

	gamePlay GamePlayState
	winner   *Player
	turns    int
	maxTurns int
	rand     *rand.Rand
	notifier Notifier
}

// GameOpts configures a Game. The zero value is valid.
type GameOpts struct {
	ID             string
	Deck           deck.Deck
	Pile           []deck.Card
	Players        []*Player
	CurrentTurnIdx int
	Rules          Rules
	// MaxTurns stops Run after this many turns. Zero means no limit.
	MaxTurns int
	Rand     *rand.Rand
	Notifier Notifier
}

// NewGame shuffles a new deck and deals to players.
// The first player is chosen at random.
func NewGame(players []*Player, opts GameOpts) (*Game, error) {
	if len(players) < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(players) > maxPlayers {
		return nil, ErrTooManyPlayers
	}

	opts.Players = players
	g := newGame(opts)

	if opts.Deck == nil {
		g.Deck = deck.New()
		g.Deck.ShuffleWith(g.rand)
	}

	// initial card deal
	for _, p := range g.Players {
		unseen := g.Deck.Deal(numCardsInGroup)
		seen := g.Deck.Deal(numCardsInGroup)
		hand := g.Deck.Deal(numCardsInGroup)
		p.PlayerCards = *NewPlayerCards(hand, seen, unseen)
		g.notify(g.buildMessage(p, protocol.Deal, nil, fmt.Sprintf("%s has been dealt in.", p.Name)))
	}

	g.CurrentTurnIdx = g.rand.Intn(len(g.Players))
	g.gamePlay = gameNotStarted

	return g, nil
}

// ExistingGame constructs a game already in progress, with cards where opts put them.
func ExistingGame(opts GameOpts) *Game {
	g := newGame(opts)
	g.gamePlay = gameInProgress
	if n := len(g.Players); n > 0 {
		g.CurrentTurnIdx = ((opts.CurrentTurnIdx % n) + n) % n
	}
	g.checkGameOver()
	return g
}

func newGame(opts GameOpts) *Game {
	g := &Game{
		ID:       opts.ID,
		Deck:     opts.Deck,
		Pile:     opts.Pile,
		Burnt:    []deck.Card{},
		Players:  opts.Players,
		Rules:    opts.Rules,
		maxTurns: opts.MaxTurns,
		rand:     opts.Rand,
		notifier: opts.Notifier,
	}

	if g.ID == "" {
		g.ID = NewID()
	}
	if g.Deck == nil {
		g.Deck = deck.Deck{}
	}
	if g.Pile == nil {
		g.Pile = []deck.Card{}
	}
	if g.Players == nil {
		g.Players = []*Player{}
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	if g == nil || len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.CurrentTurnIdx]
}

// NextPlayer returns the player who is next in line behind the current player.
func (g *Game) NextPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[(g.CurrentTurnIdx+1)%len(g.Players)]
}

// Opponents returns every player except p
func (g *Game) Opponents(p *Player) []*Player {
	opponents := []*Player{}
	for _, other := range g.Players {
		if other != p {
			opponents = append(opponents, other)
		}
	}
	return opponents
}

// turn changes the CurrentPlayer to the next Player in the queue.
func (g *Game) turn() {
	g.CurrentTurnIdx = (g.CurrentTurnIdx + 1) % len(g.Players)
}

func (g *Game) IsGameOver() bool {
	return g.gamePlay == gameOver
}

// Winner is the first player to get rid of all their cards, or nil.
func (g *Game) Winner() *Player {
	return g.winner
}

// Turns is the number of turns played so far
func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) checkGameOver() bool {
	for _, p := range g.Players {
		if p.Finished() {
			g.winner = p
			g.gamePlay = gameOver
			return true
		}
	}
	return false
}

// Setup lets every player choose which three cards to place face up.
func (g *Game) Setup() error {
	if g == nil {
		return ErrNilGame
	}
	if g.gamePlay != gameNotStarted {
		return ErrGameAlreadySetUp
	}

	for _, p := range g.Players {
		if p.Chooser == nil {
			return fmt.Errorf("%w: %s", ErrNoChooser, p.Name)
		}

		before := append(p.Hand(), p.Seen...)
		p.Chooser.ChooseSetup(p, g)
		after := append(p.Hand(), p.Seen...)

		if !sameCards(before, after) || len(p.Seen) != numCardsInGroup || !playerCardsValid(&p.PlayerCards) {
			return fmt.Errorf("%w: %s", ErrInvalidSetup, p.Name)
		}
		sortByRank(p.Seen)

		g.notify(g.buildMessage(p, protocol.Reorg, p.Seen, fmt.Sprintf("%s places %v face up.", p.Name, p.Seen)))
	}

	g.gamePlay = gameInProgress
	g.notify(g.buildMessage(g.CurrentPlayer(), protocol.Start, nil,
		fmt.Sprintf("%s goes first.", g.CurrentPlayer().Name)))

	return nil
}

// TurnResult describes what happened in one turn.
type TurnResult struct {
	Player      *Player
	Played      []deck.Card
	PickedUp    bool
	Burned      bool
	AnotherTurn bool
	GameOver    bool
}

// PlayTurn plays one turn for the current player.
func (g *Game) PlayTurn() (TurnResult, error) {
	if g == nil {
		return TurnResult{}, ErrNilGame
	}
	switch g.gamePlay {
	case gameNotStarted:
		return TurnResult{}, ErrGameNotStarted
	case gameOver:
		return TurnResult{}, ErrGameOver
	}

	p := g.CurrentPlayer()
	if p.Chooser == nil {
		return TurnResult{Player: p}, fmt.Errorf("%w: %s", ErrNoChooser, p.Name)
	}

	g.notify(g.buildMessage(p, protocol.Turn, nil, fmt.Sprintf("%s's turn.", p.Name)))

	res, err := g.takeTurn(p)
	if err != nil {
		return res, err
	}

	g.DrawUp(p)
	g.turns++

	if p.Finished() {
		g.notify(g.buildMessage(p, protocol.PlayerFinished, nil, fmt.Sprintf("%s has no cards left!", p.Name)))
	}

	if g.checkGameOver() {
		res.GameOver = true
		g.notify(g.buildMessage(g.winner, protocol.GameOver, nil,
			fmt.Sprintf("Game over! Winner is %s!", g.winner.Name)))
		return res, nil
	}

	if res.AnotherTurn {
		g.notify(g.buildMessage(p, protocol.AnotherTurn, nil, fmt.Sprintf("%s goes again.", p.Name)))
		return res, nil
	}

	g.turn()
	g.notify(g.buildMessage(p, protocol.EndOfTurn, nil, ""))

	return res, nil
}

func (g *Game) takeTurn(p *Player) (TurnResult, error) {
	res := TurnResult{Player: p}

	if p.State() == PlayUnseen {
		idx := p.Chooser.ChooseUnseen(p, g)
		if idx < 0 || idx >= len(p.Unseen) {
			return res, fmt.Errorf("%w: unseen card %d", ErrInvalidChoice, idx)
		}

		card := p.Unseen[idx]
		res.Played = []deck.Card{card}

		if !g.CanPlay(res.Played) {
			g.notify(g.buildMessage(p, protocol.UnseenFailure, res.Played,
				fmt.Sprintf("%s cannot be played. %s must pick up the pile.", card, p.Name)))
			g.flipUnseen(p, card)
			res.PickedUp = true
			return res, nil
		}

		g.notify(g.buildMessage(p, protocol.UnseenSuccess, res.Played,
			fmt.Sprintf("%s turns over %s.", p.Name, card)))
		g.play(p, res.Played, &res)
		return res, nil
	}

	combos := g.LegalCombinations(p)

	if len(combos) == 0 {
		g.PickUpPile(p)
		res.PickedUp = true
		return res, nil
	}

	if p.RequireEightFollowUp && p.State() == PlayHand && g.OnlyUnresolvableEights(p, combos) {
		g.PickUpPile(p)
		res.PickedUp = true
		return res, nil
	}

	chosen, ok := p.Chooser.ChoosePlay(p, g, combos)
	if !ok {
		g.PickUpPile(p)
		res.PickedUp = true
		return res, nil
	}

	if !offered(combos, chosen) {
		return res, fmt.Errorf("%w: %v", ErrInvalidChoice, chosen)
	}

	res.Played = chosen
	g.play(p, chosen, &res)

	return res, nil
}

func (g *Game) play(p *Player, cards []deck.Card, res *TurnResult) {
	cmd := protocol.PlayHand
	switch p.State() {
	case PlaySeen:
		cmd = protocol.PlaySeen
	case PlayUnseen:
		cmd = protocol.PlayUnseen
	}
	g.notify(g.buildMessage(p, cmd, cards, fmt.Sprintf("%s plays %v", p.Name, cards)))

	burnt := len(g.Burnt)
	res.AnotherTurn = g.ApplyPlay(p, cards)
	res.Burned = len(g.Burnt) > burnt
}

func offered(combos [][]deck.Card, chosen []deck.Card) bool {
	for _, combo := range combos {
		if sameCards(combo, chosen) {
			return true
		}
	}
	return false
}

// Run sets the game up if necessary and plays turns until someone wins.
func (g *Game) Run() (*Player, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if g.gamePlay == gameNotStarted {
		if err := g.Setup(); err != nil {
			return nil, err
		}
	}

	for !g.IsGameOver() {
		if g.maxTurns > 0 && g.turns >= g.maxTurns {
			return nil, ErrTurnLimit
		}
		if _, err := g.PlayTurn(); err != nil {
			return nil, err
		}
	}

	return g.winner, nil
}
