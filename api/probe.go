// Package api defines public API contracts for shm-probe.
package api

import (
	"context"

	"github.com/srediag/shm-probe/pkg/probe"
)

// Prober collects layout fact sections into a report.
type Prober interface {
	Collect(ctx context.Context, sections []string) (*probe.Report, error)
}

// Renderer encodes a report for output.
type Renderer interface {
	Render(report *probe.Report) ([]byte, error)
}

// Exporter serves a report until the context is canceled.
type Exporter interface {
	Run(ctx context.Context) error
}

// RenderFunc adapts a plain render function to the Renderer interface.
type RenderFunc func(report *probe.Report) ([]byte, error)

// Render implements Renderer.
func (f RenderFunc) Render(report *probe.Report) ([]byte, error) {
	return f(report)
}
