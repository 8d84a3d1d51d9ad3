package rlimit

// Prlimit sets the limit of res for process pid to newLimit if not nil and
// returns the limit before the call. pid 0 is the calling process.
func Prlimit(pid int, res Resource, newLimit *Limit) (Limit, error) {
	op := "get"
	if newLimit != nil {
		op = "set"
	}
	id, ok := res.id()
	if !ok {
		kind := ErrNotSupported
		if n, isName := res.(Name); isName && !n.known() {
			kind = ErrInvalidArgument
		}
		return Limit{}, &Error{Op: op, Pid: pid, Resource: res, Kind: kind}
	}
	old, err := sysPrlimit(pid, id, newLimit)
	if err != nil {
		return Limit{}, &Error{Op: op, Pid: pid, Resource: res, Kind: errKind(err), Err: err}
	}
	return old, nil
}

// Get returns the current limit of res for process pid
func Get(pid int, res Resource) (Limit, error) {
	return Prlimit(pid, res, nil)
}

// SetOrGet installs newLimit for res on process pid and returns the limit in
// effect afterwards as read back from the kernel.
//
// There is no locking, other processes may change the limit in between.
func SetOrGet(pid int, res Resource, newLimit Limit) (Limit, error) {
	if _, err := Prlimit(pid, res, &newLimit); err != nil {
		return Limit{}, err
	}
	return Get(pid, res)
}
