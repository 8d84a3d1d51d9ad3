package rlimit

import (
	"errors"

	"golang.org/x/sys/unix"
)

var prlimit = unix.Prlimit

func sysPrlimit(pid, res int, newLimit *Limit) (Limit, error) {
	var (
		old unix.Rlimit
		nl  *unix.Rlimit
	)
	if newLimit != nil {
		nl = &unix.Rlimit{
			Cur: toRlim(newLimit.Soft),
			Max: toRlim(newLimit.Hard),
		}
	}
	if err := prlimit(pid, res, nl, &old); err != nil {
		return Limit{}, err
	}
	return Limit{Soft: fromRlim(old.Cur), Hard: fromRlim(old.Max)}, nil
}

func errKind(err error) error {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return ErrOperationFailed
	}
	switch errno {
	case unix.EINVAL, unix.ESRCH:
		return ErrInvalidArgument
	case unix.EPERM:
		return ErrPermissionDenied
	default:
		return ErrOperationFailed
	}
}
