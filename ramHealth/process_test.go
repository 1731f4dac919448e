package ramHealth

import (
	"context"
	"errors"
	"testing"

	"github.com/monobilisim/rammon/common/sysinfo"
	"github.com/stretchr/testify/assert"
)

func TestIsInteractive(t *testing.T) {
	assert.True(t, IsInteractive("Google Chrome Helper"))
	assert.True(t, IsInteractive("firefox-bin"))
	assert.True(t, IsInteractive("msedge"))
	assert.True(t, IsInteractive("Cursor"))
	assert.True(t, IsInteractive("VSCode"))
	assert.False(t, IsInteractive("code"))
	assert.False(t, IsInteractive("unrelated_tool"))
	assert.False(t, IsInteractive(""))
}

func TestEstimateProcessMemory_SyntheticList(t *testing.T) {
	stats := &fakeStats{procs: []sysinfo.Process{
		fakeProcess{pid: 1, name: "Google Chrome Helper", rss: 120 * mb},
		fakeProcess{pid: 2, name: "cursor", rss: 40 * mb},
		fakeProcess{pid: 3, name: "unrelated_tool", rss: 500 * mb},
	}}

	estimate := EstimateProcessMemory(context.Background(), stats)

	assert.Equal(t, uint64(120), estimate.TotalMB)
	assert.Equal(t, 1, estimate.Matched)
	assert.Equal(t, uint64(0), estimate.GB)
}

func TestEstimateProcessMemory_ThresholdIsExclusive(t *testing.T) {
	stats := &fakeStats{procs: []sysinfo.Process{
		fakeProcess{pid: 1, name: "firefox", rss: 50 * mb},
		// 50 MB and a few bytes still truncates to 50
		fakeProcess{pid: 2, name: "firefox", rss: 50*mb + 1000},
		fakeProcess{pid: 3, name: "firefox", rss: 51 * mb},
	}}

	estimate := EstimateProcessMemory(context.Background(), stats)

	assert.Equal(t, uint64(51), estimate.TotalMB)
	assert.Equal(t, 1, estimate.Matched)
}

func TestEstimateProcessMemory_SumsBeforeConverting(t *testing.T) {
	stats := &fakeStats{procs: []sysinfo.Process{
		fakeProcess{pid: 1, name: "chrome", rss: 600 * mb},
		fakeProcess{pid: 2, name: "chrome", rss: 600 * mb},
		fakeProcess{pid: 3, name: "Code - vscode", rss: 900 * mb},
	}}

	estimate := EstimateProcessMemory(context.Background(), stats)

	assert.Equal(t, uint64(2100), estimate.TotalMB)
	assert.Equal(t, uint64(2), estimate.GB)
	assert.Equal(t, 3, estimate.Matched)
}

func TestEstimateProcessMemory_SkipsFailingProcesses(t *testing.T) {
	stats := &fakeStats{procs: []sysinfo.Process{
		fakeProcess{pid: 1, name: "chrome", rss: 700 * mb},
		fakeProcess{pid: 2, nameErr: errNoSuchProcess},
		fakeProcess{pid: 3, name: "firefox", rssErr: errors.New("permission denied")},
		fakeProcess{pid: 4, name: "edge", rss: 400 * mb},
	}}

	estimate := EstimateProcessMemory(context.Background(), stats)

	assert.Equal(t, uint64(1100), estimate.TotalMB)
	assert.Equal(t, 2, estimate.Matched)
	assert.Equal(t, uint64(1), estimate.GB)
}

func TestEstimateProcessMemory_ListFailure(t *testing.T) {
	stats := &fakeStats{procErr: errors.New("cannot read /proc")}

	estimate := EstimateProcessMemory(context.Background(), stats)

	assert.Equal(t, ProcessMemoryEstimate{}, estimate)
}

func TestEstimateProcessMemory_Empty(t *testing.T) {
	estimate := EstimateProcessMemory(context.Background(), &fakeStats{})
	assert.Equal(t, ProcessMemoryEstimate{}, estimate)
}
