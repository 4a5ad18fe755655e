package input

import (
	"strconv"
	"strings"
)

// Action represents a high-level intent behind a line of console input.
type Action int

const (
	ActionNone Action = iota

	// Numbered menu entry, see Intent.Index
	ActionSelect

	// Yes / no prompts
	ActionConfirm
	ActionDecline
)

// Intent is what the user asked for. Index is the zero-based menu entry
// when Action is ActionSelect.
type Intent struct {
	Action Action
	Index  int
}

// RawInput is a line exactly as typed.
type RawInput struct {
	Code string
}

// NormalizedInput is a RawInput with letters lower-cased, so "Y" and "y"
// bind the same way. Whitespace is kept: " y" is not "y".
type NormalizedInput struct {
	Code string
}

// Normalize converts a raw line to its normalized form.
func Normalize(raw RawInput) NormalizedInput {
	return NormalizedInput{Code: strings.ToLower(raw.Code)}
}

// bindings maps normalized codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"y": ActionConfirm,
	"n": ActionDecline,
}

// MapToIntent applies the bindings to a normalized input. A menu number,
// surrounding whitespace aside, selects an entry; only the canonical
// spelling counts, so "+2" and "02" do not. Anything else maps to ActionNone.
func MapToIntent(ev NormalizedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	code := strings.TrimSpace(ev.Code)
	if n, err := strconv.Atoi(code); err == nil && n > 0 && strconv.Itoa(n) == code {
		return Intent{Action: ActionSelect, Index: n - 1}
	}
	return Intent{Action: ActionNone}
}

// Parse is shorthand for MapToIntent(Normalize(RawInput{Code: line})).
func Parse(line string) Intent {
	return MapToIntent(Normalize(RawInput{Code: line}))
}
