package rlimit

import "golang.org/x/sys/unix"

// https://man7.org/linux/man-pages/man2/setrlimit.2.html
// Numbers differ between architectures (e.g. mips), so they come from x/sys.
var resourceIDs = map[Name]int{
	AS:         unix.RLIMIT_AS,
	Core:       unix.RLIMIT_CORE,
	CPU:        unix.RLIMIT_CPU,
	Data:       unix.RLIMIT_DATA,
	FSize:      unix.RLIMIT_FSIZE,
	Locks:      unix.RLIMIT_LOCKS,
	MemLock:    unix.RLIMIT_MEMLOCK,
	MsgQueue:   unix.RLIMIT_MSGQUEUE,
	Nice:       unix.RLIMIT_NICE,
	NoFile:     unix.RLIMIT_NOFILE,
	NProc:      unix.RLIMIT_NPROC,
	RSS:        unix.RLIMIT_RSS,
	RTPrio:     unix.RLIMIT_RTPRIO,
	RTTime:     unix.RLIMIT_RTTIME,
	SigPending: unix.RLIMIT_SIGPENDING,
	Stack:      unix.RLIMIT_STACK,
}
