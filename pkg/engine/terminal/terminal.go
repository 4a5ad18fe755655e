// Package terminal answers questions about the console stdout is attached to.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is assumed when stdout is not a terminal or cannot be measured.
const DefaultWidth = 80

func stdoutFd() int {
	return int(os.Stdout.Fd())
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(stdoutFd())
}

// GetWidth returns the current terminal width, or DefaultWidth if it
// cannot be determined.
func GetWidth() int {
	width, _, err := term.GetSize(stdoutFd())
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
