package rlimit

import (
	"fmt"
	"strconv"
	"strings"
)

// Resource selects the limit to operate on. It is implemented by Name and Raw
// only.
type Resource interface {
	fmt.Stringer

	// id returns the resource number of the host ABI
	id() (int, bool)
}

// Name is a resource known by name. A key `nofile` corresponds to
// `RLIMIT_NOFILE` in the C API.
type Name string

// Resources defined by setrlimit(2). Not all of them exist on every platform.
const (
	AS         Name = "as"
	Core       Name = "core"
	CPU        Name = "cpu"
	Data       Name = "data"
	FSize      Name = "fsize"
	Locks      Name = "locks"
	MemLock    Name = "memlock"
	MsgQueue   Name = "msgqueue"
	Nice       Name = "nice"
	NoFile     Name = "nofile"
	NProc      Name = "nproc"
	RSS        Name = "rss"
	RTPrio     Name = "rtprio"
	RTTime     Name = "rttime"
	SigPending Name = "sigpending"
	Stack      Name = "stack"
)

// Raw is a resource number passed to the kernel without interpretation, for
// resources this package has no name for
type Raw int

// Unit is the unit of the values of a resource
type Unit int

// Units of resource values
const (
	UnitNone Unit = iota
	UnitBytes
	UnitSeconds
	UnitMicroseconds
	UnitCount
)

func (u Unit) String() string {
	switch u {
	case UnitBytes:
		return "bytes"
	case UnitSeconds:
		return "seconds"
	case UnitMicroseconds:
		return "microsecs"
	case UnitCount:
		return "count"
	default:
		return ""
	}
}

type nameInfo struct {
	desc string
	unit Unit
}

// allNames in display order
var allNames = []Name{
	AS, Core, CPU, Data, FSize, Locks, MemLock, MsgQueue,
	Nice, NoFile, NProc, RSS, RTPrio, RTTime, SigPending, Stack,
}

var nameInfos = map[Name]nameInfo{
	AS:         {"address space limit", UnitBytes},
	Core:       {"max core file size", UnitBytes},
	CPU:        {"CPU time", UnitSeconds},
	Data:       {"max data size", UnitBytes},
	FSize:      {"max file size", UnitBytes},
	Locks:      {"max number of file locks held", UnitCount},
	MemLock:    {"max locked-in-memory address space", UnitBytes},
	MsgQueue:   {"max bytes in POSIX mqueues", UnitBytes},
	Nice:       {"max nice prio allowed to raise", UnitNone},
	NoFile:     {"max number of open files", UnitCount},
	NProc:      {"max number of processes", UnitCount},
	RSS:        {"max resident set size", UnitBytes},
	RTPrio:     {"max real-time priority", UnitNone},
	RTTime:     {"timeout for real-time tasks", UnitMicroseconds},
	SigPending: {"max number of pending signals", UnitCount},
	Stack:      {"max stack size", UnitBytes},
}

func (n Name) String() string {
	return string(n)
}

// Description returns a short human readable description
func (n Name) Description() string {
	return nameInfos[n].desc
}

// Unit returns the unit of the resource
func (n Name) Unit() Unit {
	return nameInfos[n].unit
}

// known reports whether n is one of the names defined above
func (n Name) known() bool {
	_, ok := nameInfos[n]
	return ok
}

func (n Name) id() (int, bool) {
	id, ok := resourceIDs[n]
	return id, ok
}

func (r Raw) String() string {
	return strconv.Itoa(int(r))
}

func (r Raw) id() (int, bool) {
	return int(r), true
}

// Names returns the resource names supported on the current platform
func Names() []Name {
	ret := make([]Name, 0, len(allNames))
	for _, n := range allNames {
		if _, ok := resourceIDs[n]; ok {
			ret = append(ret, n)
		}
	}
	return ret
}

// resourceNames is the reverse of resourceIDs
var resourceNames = make(map[int]Name)

func init() {
	for n, id := range resourceIDs {
		resourceNames[id] = n
	}
}

// Lookup finds the name of a resource number
func Lookup(id int) (Name, bool) {
	n, ok := resourceNames[id]
	return n, ok
}

// ParseResource parses a resource name (case insensitive, with or without
// RLIMIT_ prefix) or a decimal resource number
func ParseResource(s string) (Resource, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return Raw(i), nil
	}
	n := Name(strings.TrimPrefix(strings.ToLower(s), "rlimit_"))
	if !n.known() {
		return nil, fmt.Errorf("rlimit: unknown resource %q: %w", s, ErrInvalidArgument)
	}
	return n, nil
}

// Describe returns description and unit of r. Raw resources matching a known
// number are described as that name, unknown ones are empty.
func Describe(r Resource) (string, Unit) {
	switch r := r.(type) {
	case Name:
		return r.Description(), r.Unit()
	case Raw:
		if n, ok := Lookup(int(r)); ok {
			return n.Description(), n.Unit()
		}
	}
	return "", UnitNone
}
