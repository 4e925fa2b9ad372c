//go:build !linux && !darwin

package platform

import "os"

// PageSize returns the system memory page size in bytes.
func PageSize() int {
	return os.Getpagesize()
}

// UnameInfo is not available without uname(2).
func UnameInfo() (Uname, error) {
	return Uname{}, ErrUnsupported
}

// ShmMount returns no mount on platforms without a tmpfs shm mount.
func ShmMount() (string, bool) {
	return "", false
}

// HugePageSize is not reported on this platform.
func HugePageSize() (uint64, error) {
	return 0, ErrUnsupported
}
