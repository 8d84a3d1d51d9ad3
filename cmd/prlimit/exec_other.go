//go:build !unix

package main

import (
	"fmt"
	"runtime"
)

func execCommand(args []string) error {
	return fmt.Errorf("exec unsupported on platform %s", runtime.GOOS)
}
