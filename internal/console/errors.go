package console

import "errors"

// ErrInputUnavailable means no interactive terminal is attached, so a key
// press could not be read.
var ErrInputUnavailable = errors.New("interactive input unavailable")

// UnexpectedError wraps a failure that escaped the menu loop.
type UnexpectedError struct {
	Cause error
}

func (e *UnexpectedError) Error() string { return "unexpected error: " + e.Cause.Error() }

func (e *UnexpectedError) Unwrap() error { return e.Cause }
