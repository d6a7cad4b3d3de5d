package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrNetwork  = errors.New("network failure")
)

type NotFoundError struct{ err error }

func (e *NotFoundError) Error() string        { return e.err.Error() }
func (e *NotFoundError) Unwrap() error        { return e.err }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NotFound(err error) error {
	if err == nil {
		return nil
	}
	return &NotFoundError{err: err}
}

func NotFoundf(format string, args ...any) error {
	return &NotFoundError{err: fmt.Errorf(format, args...)}
}

// NetworkError marks a request that never got a response: DNS, dial,
// TLS, a reset connection or a cancelled context.
type NetworkError struct{ err error }

func (e *NetworkError) Error() string        { return e.err.Error() }
func (e *NetworkError) Unwrap() error        { return e.err }
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

func Network(err error) error {
	if err == nil {
		return nil
	}
	return &NetworkError{err: err}
}
