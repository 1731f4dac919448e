// This file defines the types used in the ramHealth package
//
// It provides the following types:
// - RamHealth: Represents the configuration for ramHealth
// - MemorySnapshot: Host memory totals for one cycle
// - ProcessMemoryEstimate: Memory held by interactive applications for one cycle

package ramHealth

type RamHealth struct {
	Interval      int // Seconds between two snapshots
	Startup_Delay int // Seconds to wait after the startup banner
}

// MemorySnapshot holds host memory in whole gigabytes, truncated.
// UsedPercent comes straight from the host and is not derived from the
// truncated fields.
type MemorySnapshot struct {
	TotalGB     uint64
	UsedGB      uint64
	FreeGB      uint64
	UsedPercent float64
}

// ProcessMemoryEstimate is the resident memory of interactive applications
type ProcessMemoryEstimate struct {
	GB      uint64 // TotalMB / 1024, truncated
	TotalMB uint64 // Sum of qualifying processes in MB
	Matched int    // Number of qualifying processes
}
