package game

type GamePlayState int

const (
	gameNotStarted GamePlayState = iota
	gameInProgress
	gameOver
)

// PlayerCardState is the group of cards a player must play from.
type PlayerCardState int

const (
	PlayHand PlayerCardState = iota
	PlaySeen
	PlayUnseen
	Finished
)

var stateNames = map[PlayerCardState]string{
	PlayHand:   "hand",
	PlaySeen:   "face-up",
	PlayUnseen: "face-down",
	Finished:   "finished",
}

func (s PlayerCardState) String() string {
	return stateNames[s]
}
