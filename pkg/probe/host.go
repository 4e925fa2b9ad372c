package probe

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/srediag/shm-probe/internal/logging"
	"github.com/srediag/shm-probe/internal/platform"
)

// hostFacts identifies the machine the layout facts were observed on, so a
// saved report stays interpretable.
func hostFacts(ctx context.Context) ([]Fact, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("host info: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("virtual memory: %w", err)
	}
	ncpu, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("cpu counts: %w", err)
	}

	facts := []Fact{
		{Name: "hostname", Kind: FactText, Str: info.Hostname},
		{Name: "os", Kind: FactText, Str: info.Platform + " " + info.PlatformVersion},
		{Name: "arch", Kind: FactText, Str: runtime.GOARCH},
		{Name: "cpu_logical", Kind: FactCount, Value: uint64(ncpu)},
		{Name: "mem_total", Kind: FactBytes, Value: vm.Total},
	}
	if uts, err := platform.UnameInfo(); err == nil {
		facts = append(facts, Fact{Name: "kernel", Kind: FactText, Str: uts.Sysname + " " + uts.Release})
	} else {
		logging.Debugf("host facts: uname: %v", err)
	}
	return facts, nil
}
