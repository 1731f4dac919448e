package sysinfo

import (
	"context"

	"github.com/shirou/gopsutil/v4/mem"
)

// SystemStats abstracts the host memory and process table queries.
type SystemStats interface {
	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	Processes(ctx context.Context) ([]Process, error)
	Hostname(ctx context.Context) (string, error)
}

// Process is a single entry of the process table. Every accessor may fail on
// its own once the process has exited or is owned by another user.
type Process interface {
	PID() int32
	Name(ctx context.Context) (string, error)
	RSS(ctx context.Context) (uint64, error)
}

// Exiter lets us stub out os.Exit.
type Exiter interface {
	Exit(code int)
}
