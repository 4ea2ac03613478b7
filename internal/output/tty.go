package output

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the stdout width, or fallback when it is unknown.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// ClearScreen clears the terminal between watch refreshes. Piped output is
// left alone so successive frames stay readable.
func ClearScreen() {
	if IsTTY() {
		fmt.Fprint(os.Stdout, "\033[H\033[2J")
	}
}
