// Package progress provides terminal capability detection and a spinner
// shown while templates are distributed.
package progress

import (
	"time"

	"github.com/briandowns/spinner"
)

// TerminalCapabilities describes what the attached terminal supports.
type TerminalCapabilities struct {
	// IsTTY is true when stdout is attached to a terminal.
	IsTTY bool
	// SupportsColor is true when colored output should be emitted.
	SupportsColor bool
	// SupportsUnicode is true when Unicode symbols should be used.
	SupportsUnicode bool
	// Width is the terminal width in columns (0 when not a TTY).
	Width int
}

// ProgressSymbols holds the status glyphs and the spinner character set
// selected for a capability level. SpinnerSet indexes spinner.CharSets.
type ProgressSymbols struct {
	Checkmark  string
	Failure    string
	SpinnerSet int
}

// spinnerInterval is the frame delay for the template distribution spinner.
const spinnerInterval = 100 * time.Millisecond

// Display wraps a terminal spinner. All methods are nil-safe: a nil *Display
// ignores every call, so callers never branch on whether progress display is
// enabled.
type Display struct {
	spinner *spinner.Spinner
}

// NewDisplay returns a Display for the given capabilities, or nil when
// stdout is not a terminal (piped output must stay clean).
func NewDisplay(caps TerminalCapabilities) *Display {
	if !caps.IsTTY {
		return nil
	}

	symbols := SelectSymbols(caps)
	s := spinner.New(spinner.CharSets[symbols.SpinnerSet], spinnerInterval)
	if caps.SupportsColor {
		_ = s.Color("cyan")
	}

	return &Display{spinner: s}
}

// Start begins the spinner with the given message. Calling Start while the
// spinner is already running just updates the message.
func (d *Display) Start(message string) {
	if d == nil {
		return
	}
	d.spinner.Suffix = " " + message
	if !d.spinner.Active() {
		d.spinner.Start()
	}
}

// Stop halts the spinner and clears its line. Safe to call when the spinner
// was never started.
func (d *Display) Stop() {
	if d == nil {
		return
	}
	if d.spinner.Active() {
		d.spinner.Stop()
	}
}
