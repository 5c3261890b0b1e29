// Package tui renders the interactive views of the emissions ledger: a
// scrollable record browser and bar charts for category totals and
// multi-user comparison. It only prepares and presents data; all numbers
// come from the analytics package.
package tui

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal. Interactive views
// refuse to start without one and the CLI falls back to plain tables.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
