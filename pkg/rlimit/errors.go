package rlimit

import (
	"errors"
	"fmt"
)

// Kinds of failure. Use errors.Is to test an error returned by this package.
var (
	// ErrInvalidArgument is returned when the resource is not known to the
	// kernel, soft exceeds hard, or pid is not a visible process
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPermissionDenied is returned when the caller may not raise the hard
	// limit or change limits of the target process
	ErrPermissionDenied = errors.New("permission denied")

	// ErrOperationFailed is returned for any other failure reported by the OS
	ErrOperationFailed = errors.New("operation failed")

	// ErrNotSupported is returned on platforms without prlimit or for names
	// not available on the platform
	ErrNotSupported = errors.New("not supported on this platform")
)

// Error records a failed prlimit call together with the OS error
type Error struct {
	Op       string // get or set
	Pid      int
	Resource Resource
	// Kind is one of ErrInvalidArgument, ErrPermissionDenied,
	// ErrOperationFailed and ErrNotSupported
	Kind error
	// Err is the errno returned by the syscall, nil if no syscall was made
	Err error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("rlimit: %s %v of pid %d: %v", e.Op, e.Resource, e.Pid, e.Kind)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the errno so errors.Is(err, unix.EPERM) works
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind of the error
func (e *Error) Is(target error) bool {
	return target == e.Kind
}
