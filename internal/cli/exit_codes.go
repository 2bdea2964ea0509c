package cli

import "fmt"

// Exit codes for the chlog CLI.
// These codes support scripting and CI integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a runtime, storage, or render failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitNotFound indicates the referenced entry does not exist
	ExitNotFound = 4
)

// ExitError carries a process exit code through the error return path.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates an error that carries the given exit code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

// ExitCode extracts the process exit code from an error.
// nil means success; errors without a code map to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code
	}
	return ExitFailure
}
