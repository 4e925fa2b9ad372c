//go:build !cgo || (!linux && !darwin)

package probe

import (
	"context"
	"fmt"
	"runtime"
)

// syncFacts needs the platform C headers. Without cgo there is nothing
// trustworthy to report: guessing ABI sizes would defeat the probe.
func syncFacts(_ context.Context) ([]Fact, error) {
	return nil, fmt.Errorf("%w: sync section requires cgo on %s", ErrSectionUnavailable, runtime.GOOS)
}
