//go:build !linux

package rlimit

import (
	"fmt"
	"runtime"
)

var errNotImplemented = fmt.Errorf("unsupported on platform %s", runtime.GOOS)

func sysPrlimit(pid, res int, newLimit *Limit) (Limit, error) {
	return Limit{}, errNotImplemented
}

func errKind(error) error {
	return ErrNotSupported
}
