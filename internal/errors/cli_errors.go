package errors

import (
	"errors"
	"fmt"
)

// ErrUsage is returned when the command line is malformed.
var ErrUsage = errors.New("usage error")

// NotFoundError reports a missing input file.
type NotFoundError struct {
	Path string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("File not found: %s", e.Path)
}

// NewNotFoundError creates a NotFoundError for path.
func NewNotFoundError(path string) error {
	return &NotFoundError{Path: path}
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ExitCode maps an error returned by a command to a process exit status.
// Every failure, including usage errors, exits with status 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
