package ramHealth

import (
	"context"
	"errors"

	"github.com/monobilisim/rammon/common/sysinfo"
	"github.com/shirou/gopsutil/v4/mem"
)

var errNoSuchProcess = errors.New("process does not exist")

const mb = 1024 * 1024

type fakeProcess struct {
	pid     int32
	name    string
	rss     uint64
	nameErr error
	rssErr  error
}

func (p fakeProcess) PID() int32 { return p.pid }

func (p fakeProcess) Name(ctx context.Context) (string, error) {
	if p.nameErr != nil {
		return "", p.nameErr
	}
	return p.name, nil
}

func (p fakeProcess) RSS(ctx context.Context) (uint64, error) {
	if p.rssErr != nil {
		return 0, p.rssErr
	}
	return p.rss, nil
}

type fakeStats struct {
	memory   *mem.VirtualMemoryStat
	memErr   error
	procs    []sysinfo.Process
	procErr  error
	hostname string
}

func (f *fakeStats) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return f.memory, f.memErr
}

func (f *fakeStats) Processes(ctx context.Context) ([]sysinfo.Process, error) {
	return f.procs, f.procErr
}

func (f *fakeStats) Hostname(ctx context.Context) (string, error) {
	if f.hostname == "" {
		return "", errors.New("no hostname")
	}
	return f.hostname, nil
}
