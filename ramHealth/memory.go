// This file implements the host memory sampler
//
// SampleMemory(): reads host memory totals and converts them to whole gigabytes

package ramHealth

import (
	"context"
	"errors"
	"fmt"

	"github.com/monobilisim/rammon/common"
	"github.com/monobilisim/rammon/common/sysinfo"
	"github.com/rs/zerolog/log"
)

const bytesPerGB = 1024 * 1024 * 1024

// ErrMemoryUnavailable is returned when the host memory query fails
var ErrMemoryUnavailable = errors.New("host memory information unavailable")

// BytesToGB converts bytes to whole gigabytes, truncating
func BytesToGB(bytes uint64) uint64 {
	return bytes / bytesPerGB
}

// SampleMemory queries host memory usage
func SampleMemory(ctx context.Context, stats sysinfo.SystemStats) (MemorySnapshot, error) {
	virtualMemory, err := stats.VirtualMemory(ctx)
	if err != nil {
		return MemorySnapshot{}, fmt.Errorf("%w: %v", ErrMemoryUnavailable, err)
	}
	if virtualMemory == nil {
		return MemorySnapshot{}, ErrMemoryUnavailable
	}

	snapshot := MemorySnapshot{
		TotalGB:     BytesToGB(virtualMemory.Total),
		UsedGB:      BytesToGB(virtualMemory.Used),
		FreeGB:      BytesToGB(virtualMemory.Free),
		UsedPercent: virtualMemory.UsedPercent,
	}

	log.Debug().
		Str("component", "ramHealth").
		Str("operation", "SampleMemory").
		Str("total", common.ConvertBytes(virtualMemory.Total)).
		Str("used", common.ConvertBytes(virtualMemory.Used)).
		Str("free", common.ConvertBytes(virtualMemory.Free)).
		Float64("used_pct", virtualMemory.UsedPercent).
		Msg("Sampled host memory")

	return snapshot, nil
}
