package ramHealth

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/monobilisim/rammon/common"
	"github.com/monobilisim/rammon/common/sysinfo"
	"github.com/monobilisim/rammon/daemon"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var RamHealthConfig RamHealth

// Exiter is replaced in tests
var Exiter sysinfo.Exiter = sysinfo.OSExiter{}

func Main(cmd *cobra.Command, args []string) {
	common.ScriptName = "ramHealth"
	common.Init()

	RamHealthConfig = RamHealth{
		Interval:      int(daemon.DefaultInterval / time.Second),
		Startup_Delay: int(daemon.DefaultStartupDelay / time.Second),
	}
	if err := common.ConfInit("rammon", &RamHealthConfig); err != nil {
		log.Error().Err(err).Str("component", "ramHealth").Msg("Failed to load config")
		fmt.Fprintln(os.Stderr, err)
		Exiter.Exit(1)
		return
	}

	if cmd.Flags().Changed("interval") {
		RamHealthConfig.Interval, _ = cmd.Flags().GetInt("interval")
	}
	runOnce, _ := cmd.Flags().GetBool("once")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := NewLoop(RamHealthConfig, runOnce, os.Stdout)
	if err := loop.Run(ctx, NewCycle(sysinfo.RealSystemStats{}, os.Stdout, time.Now)); err != nil {
		log.Error().Err(err).Str("component", "ramHealth").Msg("Snapshot failed")
		fmt.Fprintln(os.Stderr, err)
		Exiter.Exit(1)
	}
}

// NewLoop builds the monitor loop from the configuration
func NewLoop(config RamHealth, once bool, out io.Writer) *daemon.Loop {
	interval := time.Duration(config.Interval) * time.Second
	if interval <= 0 {
		interval = daemon.DefaultInterval
	}

	startupDelay := time.Duration(config.Startup_Delay) * time.Second
	if startupDelay < 0 {
		startupDelay = 0
	}

	return &daemon.Loop{
		Interval:     interval,
		StartupDelay: startupDelay,
		Once:         once,
		Out:          out,
		Banner:       "Starting rammon " + common.Version + "...",
		Farewell:     "rammon stopped.",
	}
}

// NewCycle returns one sample, estimate and render pass writing to out
func NewCycle(stats sysinfo.SystemStats, out io.Writer, now func() time.Time) daemon.Cycle {
	hostname, err := stats.Hostname(context.Background())
	if err != nil {
		log.Debug().Err(err).Str("component", "ramHealth").Msg("Hostname unavailable")
	}

	return func(ctx context.Context) error {
		snapshot, err := SampleMemory(ctx, stats)
		if err != nil {
			return err
		}

		estimate := EstimateProcessMemory(ctx, stats)
		report := NewReport(hostname, snapshot, estimate, now())

		if report.Advisory >= Warning {
			log.Warn().
				Str("component", "ramHealth").
				Str("advisory", report.Advisory.String()).
				Float64("used_pct", snapshot.UsedPercent).
				Msg("High memory usage")
		}

		return Display(out, report)
	}
}
