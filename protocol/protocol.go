package protocol

// Cmd represents a command exchanged between a driver and the engine
type Cmd int

const (
	NewGame Cmd = iota
	Ask
	Draw
	AdvanceTurn
	State
	GameOver
	Error
)

var cmdNames = []string{
	"NewGame",
	"Ask",
	"Draw",
	"AdvanceTurn",
	"State",
	"GameOver",
	"Error",
}

func (c Cmd) String() string {
	if c < NewGame || int(c) >= len(cmdNames) {
		return "Unknown"
	}
	return cmdNames[c]
}
