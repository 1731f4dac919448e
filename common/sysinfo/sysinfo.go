package sysinfo

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// RealSystemStats is the production implementation of SystemStats.
type RealSystemStats struct{}

func (RealSystemStats) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (RealSystemStats) Processes(ctx context.Context) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]Process, 0, len(procs))
	for _, p := range procs {
		list = append(list, realProcess{p: p})
	}
	return list, nil
}

func (RealSystemStats) Hostname(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	return info.Hostname, nil
}

// realProcess adapts a gopsutil process to the Process interface.
type realProcess struct {
	p *process.Process
}

func (r realProcess) PID() int32 {
	return r.p.Pid
}

func (r realProcess) Name(ctx context.Context) (string, error) {
	return r.p.NameWithContext(ctx)
}

func (r realProcess) RSS(ctx context.Context) (uint64, error) {
	info, err := r.p.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, err
	}
	if info == nil {
		return 0, fmt.Errorf("no memory info for pid %d", r.p.Pid)
	}
	return info.RSS, nil
}
