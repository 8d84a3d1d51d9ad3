package rlimit

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Size stores number of byte for the limit. E.g. Data, Stack.
// Maximum size is bounded by 64-bit limit
type Size uint64

var errEmptySize = errors.New("empty size")

// String stringer interface for print
func (s Size) String() string {
	t := uint64(s)
	switch {
	case t < 1<<10:
		return fmt.Sprintf("%d B", t)
	case t < 1<<20:
		return fmt.Sprintf("%.1f KiB", float64(t)/float64(1<<10))
	case t < 1<<30:
		return fmt.Sprintf("%.1f MiB", float64(t)/float64(1<<20))
	case t < 1<<40:
		return fmt.Sprintf("%.1f GiB", float64(t)/float64(1<<30))
	default:
		return fmt.Sprintf("%.1f TiB", float64(t)/float64(1<<40))
	}
}

// Set parse the size value from string, accepting k, m, g, t suffix
// optionally followed by (i)B
func (s *Size) Set(str string) error {
	if str == "" {
		return errEmptySize
	}
	switch str[len(str)-1] {
	case 'b', 'B':
		str = str[:len(str)-1]
		if len(str) > 2 && str[len(str)-1] == 'i' && strings.ContainsRune("kKmMgGtT", rune(str[len(str)-2])) {
			str = str[:len(str)-1]
		}
	}
	if str == "" {
		return errEmptySize
	}

	factor := 0
	switch str[len(str)-1] {
	case 'k', 'K':
		factor = 10
	case 'm', 'M':
		factor = 20
	case 'g', 'G':
		factor = 30
	case 't', 'T':
		factor = 40
	}
	if factor > 0 {
		str = str[:len(str)-1]
	}

	t, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return err
	}
	if bits.LeadingZeros64(t) < factor {
		return fmt.Errorf("size %s overflows 64 bits", str)
	}
	*s = Size(t << factor)
	return nil
}

// Byte return size in bytes
func (s Size) Byte() uint64 {
	return uint64(s)
}

// KiB return size in KiB
func (s Size) KiB() uint64 {
	return uint64(s) >> 10
}

// MiB return size in MiB
func (s Size) MiB() uint64 {
	return uint64(s) >> 20
}

// GiB return size in GiB
func (s Size) GiB() uint64 {
	return uint64(s) >> 30
}
