// Package adapter provides adapters for shm-probe integration with external
// observability systems.
package adapter

import (
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const scopeName = "github.com/srediag/shm-probe"

// Instrumentation bundles the OpenTelemetry meter and tracer handed to the
// probe collector. Callers wire their own providers; Noop is the default.
type Instrumentation struct {
	Meter  metric.Meter
	Tracer trace.Tracer
}

// NewInstrumentation builds an Instrumentation from the given meter and
// tracer. Nil fields are replaced with no-op implementations.
func NewInstrumentation(meter metric.Meter, tracer trace.Tracer) *Instrumentation {
	if meter == nil {
		meter = metricnoop.NewMeterProvider().Meter(scopeName)
	}
	if tracer == nil {
		tracer = tracenoop.NewTracerProvider().Tracer(scopeName)
	}
	return &Instrumentation{Meter: meter, Tracer: tracer}
}

// Noop returns an Instrumentation that records nothing.
func Noop() *Instrumentation {
	return NewInstrumentation(nil, nil)
}
