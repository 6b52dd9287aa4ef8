package progress

import (
	"os"

	"golang.org/x/term"
)

// asciiEnv forces the ASCII symbol set regardless of terminal support.
const asciiEnv = "CLAUDE_WORKFLOW_ASCII"

var (
	unicodeSymbols = ProgressSymbols{
		Checkmark:  "✓",
		Failure:    "✗",
		SpinnerSet: 14, // braille dots: ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
	}
	asciiSymbols = ProgressSymbols{
		Checkmark:  "[OK]",
		Failure:    "[FAIL]",
		SpinnerSet: 9, // | / - \
	}
)

// DetectTerminalCapabilities probes stdout and the environment. A pipe gets
// no color, no Unicode and zero width. On a real terminal, NO_COLOR disables
// color and CLAUDE_WORKFLOW_ASCII=1 forces the ASCII symbol set.
func DetectTerminalCapabilities() TerminalCapabilities {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return TerminalCapabilities{}
	}

	caps := TerminalCapabilities{
		IsTTY:           true,
		SupportsColor:   os.Getenv("NO_COLOR") == "",
		SupportsUnicode: os.Getenv(asciiEnv) != "1",
	}
	if w, _, err := term.GetSize(fd); err == nil {
		caps.Width = w
	}
	return caps
}

// SelectSymbols picks the status glyphs and spinner set for the detected
// capabilities. Terminals without Unicode support fall back to the ASCII set.
func SelectSymbols(caps TerminalCapabilities) ProgressSymbols {
	if caps.SupportsUnicode {
		return unicodeSymbols
	}
	return asciiSymbols
}
