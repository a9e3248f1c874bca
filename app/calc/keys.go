package calc

import "strings"

// CommandKind identifies a calculator command.
type CommandKind int

const (
	CmdAppend CommandKind = iota
	CmdCompute
	CmdClear
	CmdBackspace
)

func (k CommandKind) String() string {
	switch k {
	case CmdAppend:
		return "append"
	case CmdCompute:
		return "compute"
	case CmdClear:
		return "clear"
	case CmdBackspace:
		return "backspace"
	default:
		return "unknown"
	}
}

// Command is a single input to a Session. Token is only used by CmdAppend.
type Command struct {
	Kind  CommandKind
	Token string
}

// Keypad labels with a command meaning. Every other label is appended.
const (
	KeyCompute   = "="
	KeyClear     = "AC"
	KeyBackspace = "Del"
)

// Keys is the keypad layout shared by the front ends, row by row.
var Keys = [][]string{
	{KeyClear, KeyBackspace, "%", "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"mod", "0", ".", KeyCompute},
}

// ParseKey maps a keypad label to a command.
func ParseKey(label string) Command {
	switch label {
	case KeyCompute:
		return Command{Kind: CmdCompute}
	case KeyClear:
		return Command{Kind: CmdClear}
	case KeyBackspace:
		return Command{Kind: CmdBackspace}
	default:
		return Command{Kind: CmdAppend, Token: label}
	}
}

// KeyForRune maps a typed character to a keypad label; 'm' stands for the
// mod key. ok is false for characters that have no key.
func KeyForRune(r rune) (label string, ok bool) {
	switch {
	case r >= '0' && r <= '9':
		return string(r), true
	case strings.ContainsRune("+-*/.%", r):
		return string(r), true
	case r == '=':
		return KeyCompute, true
	case r == 'm':
		return "mod", true
	}
	return "", false
}
