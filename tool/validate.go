package tool

import "strings"

// Severity defines diagnostic severity produced by validators.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a structured validation finding.
type Diagnostic struct {
	Field    string   `json:"field,omitempty"`
	Code     string   `json:"code,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Result aggregates diagnostics from one or more validation passes. The
// diagnostics are complete: every violated constraint appears, never just the
// first, so an automated caller can correct all of them in one retry.
type Result struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Valid returns true when no error-severity diagnostic exists.
func (r Result) Valid() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Errors returns the messages of all error-severity diagnostics in order.
func (r Result) Errors() []string {
	messages := make([]string, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			messages = append(messages, d.Message)
		}
	}
	return messages
}

// Summary renders the error messages as a single semicolon-joined line,
// suitable for a one-line CLI failure report.
func (r Result) Summary() string {
	return strings.Join(r.Errors(), "; ")
}

// ParamValidator is implemented by tools that need checks beyond their
// declarative parameter specs. Its diagnostics are appended to the generic
// validator's output; it must not early-return on the first violation.
type ParamValidator interface {
	ValidateParams(params map[string]any) []Diagnostic
}
