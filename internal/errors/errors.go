// Package errors defines the categorized error type the claude-workflow CLI
// reports to users. Every user-facing failure carries a category, a message,
// and remediation steps the user can act on.
package errors

import "fmt"

// ErrorCategory classifies what kind of failure occurred. The category is
// printed as part of the error header so users can tell a bad invocation
// apart from a broken environment.
type ErrorCategory int

const (
	// Argument marks invalid or missing command-line arguments.
	Argument ErrorCategory = iota
	// Configuration marks invalid or unparseable configuration values.
	Configuration
	// Prerequisite marks missing files or repository state the command needs.
	Prerequisite
	// Runtime marks failures while the command was executing.
	Runtime
)

var categoryNames = [...]string{
	Argument:      "Argument Error",
	Configuration: "Configuration Error",
	Prerequisite:  "Prerequisite Error",
	Runtime:       "Runtime Error",
}

// String returns the display name for the category. Unknown values degrade
// to a bare "Error" header rather than panicking.
func (c ErrorCategory) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Error"
	}
	return categoryNames[c]
}

// CLIError is the error type every command returns for expected failures.
// Message describes what went wrong, Remediation lists the steps to fix it,
// and Usage optionally shows the correct invocation for argument mistakes.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Remediation []string
	Usage       string
}

// Error returns the message without category or remediation. The full
// rendering lives in FormatError.
func (e *CLIError) Error() string {
	return e.Message
}

func newError(category ErrorCategory, message string, remediation []string) *CLIError {
	return &CLIError{
		Category:    category,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentError reports a bad command-line argument.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return newError(Argument, message, remediation)
}

// NewArgumentErrorWithUsage reports a bad argument and shows the correct
// invocation alongside the remediation steps.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	err := newError(Argument, message, remediation)
	err.Usage = usage
	return err
}

// NewConfigError reports an invalid configuration value or file.
func NewConfigError(message string, remediation ...string) *CLIError {
	return newError(Configuration, message, remediation)
}

// NewPrerequisiteError reports missing files or repository state.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return newError(Prerequisite, message, remediation)
}

// NewRuntimeError reports a failure during command execution.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return newError(Runtime, message, remediation)
}

// WrapWithMessage prefixes an underlying error with context and assigns it a
// category. Returns nil when err is nil so call sites can wrap
// unconditionally.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return newError(category, fmt.Sprintf("%s: %v", message, err), remediation)
}

// AsCLIError returns err as a *CLIError, or nil when it is some other error
// type. Callers use it to decide between structured and plain rendering.
func AsCLIError(err error) *CLIError {
	if cliErr, ok := err.(*CLIError); ok {
		return cliErr
	}
	return nil
}
