//go:build linux || darwin

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// PageSize returns the system memory page size in bytes.
func PageSize() int {
	return unix.Getpagesize()
}

// UnameInfo returns the kernel identification from uname(2).
func UnameInfo() (Uname, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Uname{}, fmt.Errorf("uname: %w", err)
	}
	return Uname{
		Sysname: charsToString(uts.Sysname[:]),
		Release: charsToString(uts.Release[:]),
		Version: charsToString(uts.Version[:]),
		Machine: charsToString(uts.Machine[:]),
	}, nil
}

func charsToString(cs []byte) string {
	for i, c := range cs {
		if c == 0 {
			return string(cs[:i])
		}
	}
	return string(cs)
}
