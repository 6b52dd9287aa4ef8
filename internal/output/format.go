// Package output provides terminal output formatting utilities for the
// claude-workflow CLI. This package is designed to have minimal dependencies
// to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintDistribution prints a colored summary line for one template batch
// (e.g., "✓ Project docs: 6 created, 2 existing → docs/").
// Uses a green checkmark and cyan for the destination path.
func PrintDistribution(out io.Writer, label string, created, existing int, dest string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s: %d created, %d existing → %s\n", green("✓"), label, created, existing, cyan(dest))
}

// PrintInstalled prints a colored line for a file that is written on every
// run (the agent instructions file and the helper script).
func PrintInstalled(out io.Writer, label, path string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s: %s\n", green("✓"), label, cyan(path))
}

// PrintWarning prints a yellow warning line.
func PrintWarning(out io.Writer, message string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("⚠"), message)
}

// PrintDocSeparator prints a dim horizontal separator with a centered label,
// used to set a printed document apart from command output.
func PrintDocSeparator(out io.Writer, label string) {
	termWidth := GetTerminalWidth()
	dim := color.New(color.Faint).SprintFunc()

	label = " " + label + " "
	lineLen := (termWidth - len(label)) / 2
	if lineLen < 3 {
		lineLen = 3
	}

	line := strings.Repeat("─", lineLen)
	fmt.Fprintf(out, "%s%s%s\n", dim(line), dim(label), dim(line))
}
