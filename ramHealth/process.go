// This file implements the interactive application memory estimate
//
// EstimateProcessMemory(): sums the resident memory of browsers and editors

package ramHealth

import (
	"context"
	"fmt"
	"strings"

	"github.com/monobilisim/rammon/common/sysinfo"
	"github.com/rs/zerolog/log"
)

// InteractiveKeywords are matched against lower-cased process names
var InteractiveKeywords = []string{"chrome", "firefox", "edge", "cursor", "vscode"}

// MinProcessMB is the resident size a process must exceed to be counted
const MinProcessMB = 50

const bytesPerMB = 1024 * 1024

// IsInteractive reports whether a process name contains one of InteractiveKeywords
func IsInteractive(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range InteractiveKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// EstimateProcessMemory sums resident memory of interactive processes above
// MinProcessMB. Processes that exit or deny access mid-scan are skipped.
func EstimateProcessMemory(ctx context.Context, stats sysinfo.SystemStats) ProcessMemoryEstimate {
	var estimate ProcessMemoryEstimate

	procs, err := stats.Processes(ctx)
	if err != nil {
		log.Warn().
			Err(err).
			Str("component", "ramHealth").
			Str("operation", "EstimateProcessMemory").
			Msg("Failed to list processes")
		return estimate
	}

	skipped := 0
	for _, proc := range procs {
		memoryMB, interactive, err := inspectProcess(ctx, proc)
		if err != nil {
			skipped++
			log.Debug().
				Err(err).
				Str("component", "ramHealth").
				Int32("pid", proc.PID()).
				Msg("Skipping process")
			continue
		}
		if !interactive || memoryMB <= MinProcessMB {
			continue
		}

		estimate.TotalMB += memoryMB
		estimate.Matched++
	}

	estimate.GB = estimate.TotalMB / 1024

	log.Debug().
		Str("component", "ramHealth").
		Str("operation", "EstimateProcessMemory").
		Int("processes", len(procs)).
		Int("matched", estimate.Matched).
		Int("skipped", skipped).
		Uint64("total_mb", estimate.TotalMB).
		Msg("Estimated interactive process memory")

	return estimate
}

// inspectProcess returns the resident size in MB of an interactive process.
// The size is only read when the name matches.
func inspectProcess(ctx context.Context, proc sysinfo.Process) (memoryMB uint64, interactive bool, err error) {
	name, err := proc.Name(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("read name: %w", err)
	}
	if !IsInteractive(name) {
		return 0, false, nil
	}

	rss, err := proc.RSS(ctx)
	if err != nil {
		return 0, true, fmt.Errorf("read memory of %s: %w", name, err)
	}

	return rss / bytesPerMB, true, nil
}
