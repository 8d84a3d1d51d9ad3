package rlimit

import (
	"fmt"
	"strings"
)

// Request is a change to the limit of a resource. A nil side keeps the value
// currently in effect.
type Request struct {
	Resource Resource
	Soft     *Value
	Hard     *Value
}

// Result is the outcome of an applied Request
type Result struct {
	Resource Resource
	// Old is the limit before the call
	Old Limit
	// New is the limit read back after the call
	New Limit
}

// ParseRequest parses name=value where value is one of
//
//	v          soft and hard set to v
//	soft:hard  both set
//	soft:      hard unchanged
//	:hard      soft unchanged
func ParseRequest(s string) (Request, error) {
	name, lim, ok := strings.Cut(s, "=")
	if !ok {
		return Request{}, fmt.Errorf("rlimit: request %q is not name=soft:hard: %w", s, ErrInvalidArgument)
	}
	res, err := ParseResource(name)
	if err != nil {
		return Request{}, err
	}
	r := Request{Resource: res}

	soft, hard, pair := strings.Cut(lim, ":")
	if !pair {
		v, err := ParseValue(lim)
		if err != nil {
			return Request{}, err
		}
		r.Soft, r.Hard = &v, &v
		return r, nil
	}
	if soft == "" && hard == "" {
		return Request{}, fmt.Errorf("rlimit: request %q sets nothing: %w", s, ErrInvalidArgument)
	}
	if r.Soft, err = parseSide(soft); err != nil {
		return Request{}, err
	}
	if r.Hard, err = parseSide(hard); err != nil {
		return Request{}, err
	}
	return r, nil
}

func parseSide(s string) (*Value, error) {
	if s == "" {
		return nil, nil
	}
	v, err := ParseValue(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Resolve fills the kept sides from current
func (r Request) Resolve(current Limit) Limit {
	l := current
	if r.Soft != nil {
		l.Soft = *r.Soft
	}
	if r.Hard != nil {
		l.Hard = *r.Hard
	}
	return l
}

// Apply installs the request on process pid. The current limit is read first
// only if one side is kept.
func (r Request) Apply(pid int) (Result, error) {
	var current Limit
	if r.Soft == nil || r.Hard == nil {
		c, err := Get(pid, r.Resource)
		if err != nil {
			return Result{}, err
		}
		current = c
	}
	want := r.Resolve(current)
	old, err := Prlimit(pid, r.Resource, &want)
	if err != nil {
		return Result{}, err
	}
	now, err := Get(pid, r.Resource)
	if err != nil {
		return Result{}, err
	}
	return Result{Resource: r.Resource, Old: old, New: now}, nil
}

func (r Request) String() string {
	side := func(v *Value) string {
		if v == nil {
			return ""
		}
		return v.String()
	}
	return fmt.Sprintf("%v=%s:%s", r.Resource, side(r.Soft), side(r.Hard))
}

func (r Result) String() string {
	_, u := Describe(r.Resource)
	return fmt.Sprintf("%v[%s -> %s]", r.Resource, r.Old.Format(u), r.New.Format(u))
}
