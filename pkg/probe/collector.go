package probe

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Workiva/go-datastructures/queue"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/srediag/shm-probe/adapter"
	"github.com/srediag/shm-probe/internal/logging"
)

const pollInterval = 10 * time.Millisecond

// Collector gathers sections from a registry on a bounded worker pool.
// Section probes run concurrently; the report preserves request order.
type Collector struct {
	registry *Registry
	pool     *ants.Pool
	timeout  time.Duration
	tracer   trace.Tracer
	sections metric.Int64Counter
}

// NewCollector builds a collector over registry. A nil registry means
// DefaultRegistry, a nil config means DefaultConfig, a nil inst means no-op
// instrumentation. Callers must Close the collector to release the pool.
func NewCollector(registry *Registry, config *Config, inst *adapter.Instrumentation) (*Collector, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := VerifyConfig(config); err != nil {
		return nil, err
	}
	if inst == nil {
		inst = adapter.Noop()
	}
	pool, err := ants.NewPool(config.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("worker pool: %w", err)
	}
	counter, err := inst.Meter.Int64Counter("shmprobe.sections.total",
		metric.WithDescription("Number of section probes executed."))
	if err != nil {
		pool.Release()
		return nil, fmt.Errorf("sections counter: %w", err)
	}
	return &Collector{
		registry: registry,
		pool:     pool,
		timeout:  config.Timeout,
		tracer:   inst.Tracer,
		sections: counter,
	}, nil
}

// Close releases the worker pool.
func (c *Collector) Close() {
	c.pool.Release()
}

// Collect probes the named sections and assembles them into a report in the
// requested order. An empty sections slice means every registered section.
// Unknown names fail before any probe runs; a failing probe is recorded in
// its Section and does not fail the collection.
func (c *Collector) Collect(ctx context.Context, sections []string) (*Report, error) {
	if len(sections) == 0 {
		sections = c.registry.Names()
	}
	ctx, span := c.tracer.Start(ctx, "probe.Collect")
	defer span.End()

	probes := make(map[string]ProbeFunc, len(sections))
	for _, name := range sections {
		fn, err := c.registry.Lookup(name)
		if err != nil {
			return nil, err
		}
		probes[name] = fn
	}

	pending := queue.New(int64(len(sections)))
	defer pending.Dispose()
	for _, name := range sections {
		if err := pending.Put(name); err != nil {
			return nil, fmt.Errorf("queue sections: %w", err)
		}
	}

	results := cmap.New[Section]()
	workers := c.pool.Cap()
	if workers > len(sections) {
		workers = len(sections)
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		if err := c.pool.Submit(func() {
			defer wg.Done()
			c.drain(ctx, pending, probes, results)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit worker: %w", err)
		}
	}
	wg.Wait()

	report := &Report{
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		CollectedAt: time.Now(),
		Sections:    make([]Section, 0, len(sections)),
	}
	for _, name := range sections {
		sec, ok := results.Get(name)
		if !ok {
			// Happens only when the parent context died mid-collection.
			sec = Section{Name: name, Err: ctx.Err()}
		}
		report.Sections = append(report.Sections, sec)
	}
	return report, nil
}

func (c *Collector) drain(ctx context.Context, pending *queue.Queue, probes map[string]ProbeFunc, results cmap.ConcurrentMap[string, Section]) {
	for {
		if ctx.Err() != nil {
			return
		}
		items, err := pending.Poll(1, pollInterval)
		if err != nil || len(items) == 0 {
			return
		}
		name, ok := items[0].(string)
		if !ok {
			continue
		}
		results.Set(name, c.runSection(ctx, name, probes[name]))
	}
}

func (c *Collector) runSection(ctx context.Context, name string, fn ProbeFunc) Section {
	sctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	sctx, span := c.tracer.Start(sctx, "probe.section."+name)
	defer span.End()

	start := time.Now()
	facts, err := fn(sctx)
	c.sections.Add(sctx, 1)
	if err != nil {
		logging.Warnf("section %s failed after %v: %v", name, time.Since(start), err)
		return Section{Name: name, Err: err}
	}
	logging.Debugf("section %s: %d facts in %v", name, len(facts), time.Since(start))
	return Section{Name: name, Facts: facts}
}
