// Package platform contains platform-specific helpers for reading memory
// layout facts. Function implementations live in build-tagged files
// (platform_unix.go, platform_linux.go, platform_darwin.go).
package platform

import "errors"

// ErrUnsupported reports that a fact cannot be read on this platform.
var ErrUnsupported = errors.New("platform: not supported on this system")

// Uname holds the kernel identification fields reported by uname(2).
type Uname struct {
	Sysname string
	Release string
	Version string
	Machine string
}
