package util

import (
	"github.com/pkg/errors"
)

type fder interface {
	Fd() uintptr
}

type ignorable interface {
	Ignorable() bool
}

type exitStatuser interface {
	ExitStatus() int
}

type ignorableErr struct {
	error
}

func (e ignorableErr) Ignorable() bool { return true }
func (e ignorableErr) Unwrap() error   { return e.error }

// MakeIgnorable marks err as one that should end the program without
// being reported.
func MakeIgnorable(err error) error {
	return ignorableErr{err}
}

type exitStatusErr struct {
	error
	status int
}

func (e exitStatusErr) ExitStatus() int { return e.status }
func (e exitStatusErr) Unwrap() error   { return e.error }

// SetExitStatus attaches the process exit status to err.
func SetExitStatus(err error, status int) error {
	return exitStatusErr{error: err, status: status}
}

// IsIgnorableError reports whether err, or any error it wraps, was
// marked with MakeIgnorable.
func IsIgnorableError(err error) bool {
	var v ignorable
	if errors.As(err, &v) {
		return v.Ignorable()
	}
	return false
}

// GetExitStatus returns the exit status attached to err. Errors
// without one exit with status 1.
func GetExitStatus(err error) (int, bool) {
	var v exitStatuser
	if errors.As(err, &v) {
		return v.ExitStatus(), true
	}
	return 1, false
}
