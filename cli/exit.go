package cli

import "fmt"

// Exit codes: 0 success, 1 runtime or collaborator failure, 2 bad input
// (unparseable or invalid tool parameters).
const (
	exitSuccess    = 0
	exitRuntime    = 1
	exitValidation = 2
)

// ExitError is an error that carries a specific process exit code.
// Cobra's RunE returns this to signal the desired exit code to main.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// exitError creates a new ExitError with the given code and formatted message.
func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
