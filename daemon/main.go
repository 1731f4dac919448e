package daemon

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultInterval     = 30 * time.Second
	DefaultStartupDelay = 1 * time.Second
)

// Cycle runs one sampling and rendering pass
type Cycle func(ctx context.Context) error

// Loop runs a Cycle repeatedly until its context is cancelled
type Loop struct {
	Interval     time.Duration // Wait between two cycles
	StartupDelay time.Duration // Wait between the startup banner and the first cycle
	Once         bool          // Run a single cycle and return
	Out          io.Writer     // Banner and farewell messages, defaults to stdout

	Banner   string
	Farewell string
}

func (l *Loop) out() io.Writer {
	if l.Out == nil {
		return os.Stdout
	}
	return l.Out
}

// Run announces startup, then alternates between a cycle and an idle wait.
// Cancellation ends the loop at the next boundary, including mid-wait, and is
// not an error. A failed cycle is logged and retried on the next interval.
func (l *Loop) Run(ctx context.Context, cycle Cycle) error {
	if l.Interval <= 0 {
		l.Interval = DefaultInterval
	}

	if l.Banner != "" {
		fmt.Fprintln(l.out(), l.Banner)
	}

	if !l.Once && !wait(ctx, l.StartupDelay) {
		l.farewell()
		return nil
	}

	for cycles := 1; ; cycles++ {
		if err := cycle(ctx); err != nil {
			if ctx.Err() != nil {
				l.farewell()
				return nil
			}
			if l.Once {
				return err
			}
			log.Error().
				Err(err).
				Str("component", "daemon").
				Int("cycle", cycles).
				Dur("retry_in", l.Interval).
				Msg("Cycle failed, retrying on next interval")
		}

		if l.Once {
			return nil
		}

		log.Debug().
			Str("component", "daemon").
			Int("cycle", cycles).
			Dur("interval", l.Interval).
			Msg("Cycle done, waiting")

		if !wait(ctx, l.Interval) {
			l.farewell()
			return nil
		}
	}
}

func (l *Loop) farewell() {
	log.Debug().
		Str("component", "daemon").
		Msg("Loop cancelled")

	if l.Farewell != "" {
		fmt.Fprintln(l.out(), "\n"+l.Farewell)
	}
}

// wait sleeps for d and returns false if ctx was cancelled first
func wait(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
