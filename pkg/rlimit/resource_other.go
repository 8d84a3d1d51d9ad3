//go:build !linux

package rlimit

// prlimit is linux only, names are kept for parsing but none resolves
var resourceIDs = map[Name]int{}
