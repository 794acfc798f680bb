// Package exit maps group_tool failures to process exit codes.
package exit

import (
	"errors"
	"fmt"

	"github.com/spechtlabs/grouptool/pkg/groupd"
)

// Process exit codes: 0 success, 1 usage, 2 config, 3 connect, 4 protocol, 5 query.
const (
	CodeSuccess  = 0
	CodeUsage    = 1
	CodeConfig   = 2
	CodeConnect  = 3
	CodeProtocol = 4
	CodeQuery    = 5
)

// Error carries an exit code and underlying error.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit %d", e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an exit error with the given code and optional err.
func New(code int, err error) *Error {
	return &Error{Code: code, Err: err}
}

// Usage returns exit code 1 (invalid option or argument).
func Usage(err error) *Error { return New(CodeUsage, err) }

// Config returns exit code 2 (unreadable config file).
func Config(err error) *Error { return New(CodeConfig, err) }

// Query returns the exit code of a failed membership query: the groupd
// transport code when err carries one, 5 otherwise.
func Query(err error) *Error {
	if code, ok := groupdCode(err); ok {
		return New(code, err)
	}
	return New(CodeQuery, err)
}

// CodeOf returns the exit code for err. An *Error keeps its code, groupd
// failures map to their sentinel's code, anything else is a usage error.
func CodeOf(err error) int {
	if err == nil {
		return CodeSuccess
	}

	var ex *Error
	if errors.As(err, &ex) {
		return ex.Code
	}

	if code, ok := groupdCode(err); ok {
		return code
	}
	return CodeUsage
}

func groupdCode(err error) (int, bool) {
	switch {
	case errors.Is(err, groupd.ErrConnect):
		return CodeConnect, true
	case errors.Is(err, groupd.ErrIncompleteWrite),
		errors.Is(err, groupd.ErrRead),
		errors.Is(err, groupd.ErrDecode):
		return CodeProtocol, true
	case errors.Is(err, groupd.ErrDaemon):
		return CodeQuery, true
	}
	return 0, false
}
