package game

// Command is one input event as the engine sees it, independent of the
// frontend that produced it.
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdReset
	CmdQuit
)

var commandNames = [...]string{
	CmdNone:  "none",
	CmdUp:    "up",
	CmdDown:  "down",
	CmdLeft:  "left",
	CmdRight: "right",
	CmdReset: "reset",
	CmdQuit:  "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Direction returns the heading a steering command asks for.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CmdUp:
		return DirUp, true
	case CmdDown:
		return DirDown, true
	case CmdLeft:
		return DirLeft, true
	case CmdRight:
		return DirRight, true
	}
	return 0, false
}
