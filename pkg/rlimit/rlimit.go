// Package rlimit reads and writes the resource limits of a process through
// the prlimit syscall on linux.
//
// # Value
//
// Value is one side of a limit, either Bounded(n) or Unbounded. The zero
// Value is Unbounded, which is never the same thing as Bounded(0).
//
// # Limit
//
// Limit is the soft / hard pair. The kernel rejects soft > hard, nothing in
// this package checks it beforehand.
//
// # Resource
//
// Resource is either a Name known to the package (e.g. NoFile) or a Raw
// resource number passed to the kernel as is.
package rlimit

import (
	"fmt"
	"strings"
)

// Value is a bound on a resource, either Bounded(n) or Unbounded
type Value struct {
	n       uint64
	bounded bool
}

// Bounded creates a finite value. n == math.MaxUint64 is the kernel encoding
// of infinity and becomes Unbounded.
func Bounded(n uint64) Value {
	if n == rlimInfinity {
		return Value{}
	}
	return Value{n: n, bounded: true}
}

// Unbounded creates a value without ceiling
func Unbounded() Value {
	return Value{}
}

// Get returns the bound and true, or 0 and false for Unbounded
func (v Value) Get() (uint64, bool) {
	return v.n, v.bounded
}

// IsUnbounded reports whether v has no ceiling
func (v Value) IsUnbounded() bool {
	return !v.bounded
}

// Equal reports whether v and o are the same variant with the same bound
func (v Value) Equal(o Value) bool {
	return v.bounded == o.bounded && v.n == o.n
}

func (v Value) String() string {
	if !v.bounded {
		return "unlimited"
	}
	return fmt.Sprint(v.n)
}

// Format formats v in the unit of its resource
func (v Value) Format(u Unit) string {
	if !v.bounded {
		return "unlimited"
	}
	switch u {
	case UnitBytes:
		return Size(v.n).String()
	case UnitSeconds:
		return fmt.Sprintf("%d s", v.n)
	case UnitMicroseconds:
		return fmt.Sprintf("%d us", v.n)
	default:
		return fmt.Sprint(v.n)
	}
}

// ParseValue parses "unlimited" (also "infinity", "inf" and "-1") or a size
// such as 1024, 64k, 1MiB
func ParseValue(s string) (Value, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unlimited", "infinity", "inf", "-1":
		return Unbounded(), nil
	}
	var sz Size
	if err := sz.Set(strings.TrimSpace(s)); err != nil {
		return Value{}, fmt.Errorf("rlimit: invalid value %q: %w", s, ErrInvalidArgument)
	}
	return Bounded(sz.Byte()), nil
}

// Limit is the soft and hard limits of a resource
type Limit struct {
	// Soft is the limit enforced by the kernel
	Soft Value
	// Hard is the ceiling for the soft limit, only privileged process may raise it
	Hard Value
}

func (l Limit) String() string {
	return l.Soft.String() + ":" + l.Hard.String()
}

// Format formats l in the unit of its resource
func (l Limit) Format(u Unit) string {
	return l.Soft.Format(u) + ":" + l.Hard.Format(u)
}

// rlimInfinity is RLIM64_INFINITY used by prlimit64
const rlimInfinity = ^uint64(0)

func toRlim(v Value) uint64 {
	if !v.bounded {
		return rlimInfinity
	}
	return v.n
}

func fromRlim(r uint64) Value {
	return Bounded(r)
}
