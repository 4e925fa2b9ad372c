//go:build darwin

package platform

// ShmMount returns no mount on Darwin: POSIX shared memory objects are not
// exposed through the filesystem there.
func ShmMount() (string, bool) {
	return "", false
}

// HugePageSize returns 0 on Darwin, which does not report a default huge
// page size the way Linux does.
func HugePageSize() (uint64, error) {
	return 0, nil
}
