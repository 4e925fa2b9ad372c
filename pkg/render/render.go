// Package render turns a probe report into bytes. The text form reproduces
// the line layout of the historical C diagnostic for the sync section and a
// commented banner form for companion sections; the JSON form is a stable
// machine-readable encoding.
package render

import (
	"fmt"

	"github.com/srediag/shm-probe/pkg/probe"
)

// Render encodes report in the named format (probe.FormatText or
// probe.FormatJSON).
func Render(format string, report *probe.Report) ([]byte, error) {
	switch format {
	case probe.FormatText:
		return Text(report)
	case probe.FormatJSON:
		return JSON(report)
	default:
		return nil, fmt.Errorf("render: unknown format %q", format)
	}
}
