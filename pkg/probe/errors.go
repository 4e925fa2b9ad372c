package probe

import "errors"

var (
	// ErrSectionUnavailable reports that a section cannot be probed on this
	// platform or build (for example the sync section without cgo).
	ErrSectionUnavailable = errors.New("probe: section unavailable on this platform")

	// ErrUnknownSection reports a section name with no registered probe.
	ErrUnknownSection = errors.New("probe: unknown section")

	// ErrDuplicateSection reports a second registration under one name.
	ErrDuplicateSection = errors.New("probe: section already registered")
)
