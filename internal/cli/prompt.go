package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tiro27cbs/carbontrack/internal/tui"
)

// Confirm asks the user a yes/no question and returns their answer.
// It returns false immediately in non-interactive (non-TTY) environments so
// scripted invocations never hang; destructive commands expose a --yes flag
// for that case.
//
// The prompt defaults to "No" when the user presses Enter without input.
// Valid affirmatives: "y", "yes" (any case); anything else declines.
func Confirm(writer io.Writer, reader io.Reader, question string) bool {
	if !tui.IsTTY() {
		return false
	}

	fmt.Fprintf(writer, "%s [y/N] ", question)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
