package probe

import (
	"context"
	"errors"
	"fmt"
	"unsafe"

	"github.com/shirou/gopsutil/v3/disk"
	"golang.org/x/sys/cpu"

	"github.com/srediag/shm-probe/internal/logging"
	"github.com/srediag/shm-probe/internal/platform"
)

// memoryFacts reports the memory layout context a shared-memory region
// lives in: page granularity, false-sharing granularity, pointer width and
// the capacity of the tmpfs mount backing POSIX shm objects.
func memoryFacts(ctx context.Context) ([]Fact, error) {
	facts := []Fact{
		{Name: "page_size", Kind: FactBytes, Value: uint64(platform.PageSize())},
		{Name: "cache_line_size", Kind: FactBytes, Value: uint64(unsafe.Sizeof(cpu.CacheLinePad{}))},
		{Name: "go_word_size", Kind: FactBytes, Value: uint64(unsafe.Sizeof(uintptr(0)))},
	}

	hp, err := platform.HugePageSize()
	if err != nil {
		if !errors.Is(err, platform.ErrUnsupported) {
			return nil, fmt.Errorf("huge page size: %w", err)
		}
		hp = 0
	}
	if hp > 0 {
		facts = append(facts, Fact{Name: "huge_page_size", Kind: FactBytes, Value: hp})
	}

	if mount, ok := platform.ShmMount(); ok {
		usage, err := disk.UsageWithContext(ctx, mount)
		if err != nil {
			// The mount can be absent in minimal containers; the remaining
			// facts are still worth reporting.
			logging.Warnf("memory facts: usage of %s: %v", mount, err)
		} else {
			facts = append(facts, Fact{Name: "dev_shm_capacity", Kind: FactBytes, Value: usage.Total})
		}
	}
	return facts, nil
}
