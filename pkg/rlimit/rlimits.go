package rlimit

import (
	"fmt"
	"strings"
)

// RLimit is the limit of a resource
type RLimit struct {
	// Res is the resource type (e.g. NoFile)
	Res Resource
	// Rlim is the limit applied to that resource
	Rlim Limit
}

func (r RLimit) String() string {
	_, u := Describe(r.Res)
	return fmt.Sprintf("%v[%s]", r.Res, r.Rlim.Format(u))
}

// List reads the limits of every resource named on this platform for pid
func List(pid int) ([]RLimit, error) {
	names := Names()
	ret := make([]RLimit, 0, len(names))
	for _, n := range names {
		l, err := Get(pid, n)
		if err != nil {
			return ret, err
		}
		ret = append(ret, RLimit{Res: n, Rlim: l})
	}
	return ret, nil
}

// RLimits is an ordered set of requests applied one by one
type RLimits []Request

// Apply applies the requests in order and stops at the first failure. The
// results of the requests applied before the failure are returned with the
// error, they are not rolled back.
func (rs RLimits) Apply(pid int) ([]Result, error) {
	ret := make([]Result, 0, len(rs))
	for _, r := range rs {
		res, err := r.Apply(pid)
		if err != nil {
			return ret, err
		}
		ret = append(ret, res)
	}
	return ret, nil
}

func (rs RLimits) String() string {
	var sb strings.Builder
	sb.WriteString("RLimits[")
	for i, r := range rs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(r.String())
	}
	sb.WriteString("]")
	return sb.String()
}
