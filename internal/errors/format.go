package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// sprintFunc renders one fragment of the error output, optionally styled.
type sprintFunc func(a ...any) string

// styles holds the renderers for each fragment of a formatted error.
type styles struct {
	errLabel   sprintFunc
	errMessage sprintFunc
	category   sprintFunc
	usageLabel sprintFunc
	usageText  sprintFunc
	fixLabel   sprintFunc
	bullet     sprintFunc
}

// passthrough renders fragments unstyled. The color package falls back to
// the same behavior on its own when NO_COLOR is set or stdout is piped.
func passthrough(a ...any) string { return fmt.Sprint(a...) }

var (
	colored = styles{
		errLabel:   color.New(color.FgRed, color.Bold).SprintFunc(),
		errMessage: color.New(color.FgRed).SprintFunc(),
		category:   color.New(color.FgYellow).SprintFunc(),
		usageLabel: color.New(color.FgCyan, color.Bold).SprintFunc(),
		usageText:  color.New(color.FgCyan).SprintFunc(),
		fixLabel:   color.New(color.FgGreen, color.Bold).SprintFunc(),
		bullet:     color.New(color.FgGreen).SprintFunc(),
	}
	uncolored = styles{
		errLabel:   passthrough,
		errMessage: passthrough,
		category:   passthrough,
		usageLabel: passthrough,
		usageText:  passthrough,
		fixLabel:   passthrough,
		bullet:     passthrough,
	}
)

// FormatError renders a CLIError for the terminal, colored when the terminal
// supports it.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	return render(err, colored)
}

// FormatErrorPlain renders a CLIError without any styling, for logs and
// non-terminal output.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return render(err, uncolored)
}

// render writes the three sections of an error report: the categorized
// header, the usage line when present, and the remediation list when present.
func render(err *CLIError, st styles) string {
	var b strings.Builder

	b.WriteString(st.errLabel("Error"))
	b.WriteString(" [")
	b.WriteString(st.category(err.Category.String()))
	b.WriteString("]: ")
	b.WriteString(st.errMessage(err.Message))
	b.WriteString("\n")

	if err.Usage != "" {
		b.WriteString("\n")
		b.WriteString(st.usageLabel("Usage: "))
		b.WriteString(st.usageText(err.Usage))
		b.WriteString("\n")
	}

	if len(err.Remediation) > 0 {
		b.WriteString("\n")
		b.WriteString(st.fixLabel("To fix this:"))
		b.WriteString("\n")
		for _, step := range err.Remediation {
			b.WriteString("  ")
			b.WriteString(st.bullet("•"))
			b.WriteString(" ")
			b.WriteString(step)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FprintError writes a formatted CLIError to w. A nil error writes nothing.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}

// PrintError writes a formatted CLIError to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FormatSimpleError renders a plain error under the given category, without
// remediation. Used when a command fails with an error that was never
// promoted to a CLIError.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	return FormatError(&CLIError{Category: category, Message: err.Error()})
}
