package engine

// Command is a player action decoded from a key press
type Command uint8

const (
	CmdMoveLeft Command = iota
	CmdMoveRight
	CmdStop
	CmdFireLaser
	CmdFireRocket
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdStop:
		return "Stop"
	case CmdFireLaser:
		return "FireLaser"
	case CmdFireRocket:
		return "FireRocket"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// CommandSource yields the commands received since the previous call
// Drain must not block
type CommandSource interface {
	Drain() []Command
}

// CommandQueue is an in-memory CommandSource, used by tests and replays
type CommandQueue struct {
	pending []Command
}

// Push appends commands for the next Drain
func (q *CommandQueue) Push(cmds ...Command) {
	q.pending = append(q.pending, cmds...)
}

// Drain returns and clears the pending commands
func (q *CommandQueue) Drain() []Command {
	out := q.pending
	q.pending = nil
	return out
}
