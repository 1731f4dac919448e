package ramHealth

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v4/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToGB_Truncates(t *testing.T) {
	assert.Equal(t, uint64(1), BytesToGB(1_999_999_999))
	assert.Equal(t, uint64(0), BytesToGB(1024*1024*1024-1))
	assert.Equal(t, uint64(1), BytesToGB(1024*1024*1024))
	assert.Equal(t, uint64(1), BytesToGB(2*1024*1024*1024-1))
}

func TestSampleMemory(t *testing.T) {
	stats := &fakeStats{memory: &mem.VirtualMemoryStat{
		Total:       16 * 1024 * 1024 * 1024,
		Used:        1_999_999_999,
		Free:        14*1024*1024*1024 + 500*mb,
		UsedPercent: 12.4,
	}}

	snapshot, err := SampleMemory(context.Background(), stats)
	require.NoError(t, err)

	assert.Equal(t, uint64(16), snapshot.TotalGB)
	assert.Equal(t, uint64(1), snapshot.UsedGB)
	assert.Equal(t, uint64(14), snapshot.FreeGB)
	// Percentage is taken from the host, not recomputed from truncated fields
	assert.Equal(t, 12.4, snapshot.UsedPercent)
	// Independent truncation means the fields need not add up
	assert.NotEqual(t, snapshot.TotalGB, snapshot.UsedGB+snapshot.FreeGB)
}

func TestSampleMemory_Unavailable(t *testing.T) {
	stats := &fakeStats{memErr: errors.New("no /proc/meminfo")}

	_, err := SampleMemory(context.Background(), stats)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMemoryUnavailable)
	assert.Contains(t, err.Error(), "no /proc/meminfo")
}

func TestSampleMemory_NilStat(t *testing.T) {
	_, err := SampleMemory(context.Background(), &fakeStats{})
	assert.ErrorIs(t, err, ErrMemoryUnavailable)
}
