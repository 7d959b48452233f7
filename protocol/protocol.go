package protocol

// Cmd identifies what happened in a game event
type Cmd int

const (
	Null Cmd = iota
	Deal
	Reorg
	Start
	Turn
	PlayHand   // when a player plays cards from their hand
	PlaySeen   // when a player plays cards from their seen cards
	PlayUnseen // when a player plays cards from their unseen cards
	UnseenSuccess
	UnseenFailure
	Burn
	PickUp
	ReplenishHand
	AnotherTurn
	EndOfTurn
	PlayerFinished
	GameOver
)

var CmdNames = map[Cmd]string{
	Null:           "Null",
	Deal:           "Deal",
	Reorg:          "Reorg",
	Start:          "Start",
	Turn:           "Turn",
	PlayHand:       "PlayHand",
	PlaySeen:       "PlaySeen",
	PlayUnseen:     "PlayUnseen",
	UnseenSuccess:  "UnseenSuccess",
	UnseenFailure:  "UnseenFailure",
	Burn:           "Burn",
	PickUp:         "PickUp",
	ReplenishHand:  "ReplenishHand",
	AnotherTurn:    "AnotherTurn",
	EndOfTurn:      "EndOfTurn",
	PlayerFinished: "PlayerFinished",
	GameOver:       "GameOver",
}

func (c Cmd) String() string {
	return CmdNames[c]
}
