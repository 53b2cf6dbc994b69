package checker

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Driver fires check cycles on a fixed interval, starting with one
// immediately on startup. Cycles are single-flight within the process: the
// scheduled tick and the manual trigger share the same guarded entry point,
// and whichever finds a cycle already running returns without side effects.
// Cross-process overlap is handled by the ledger's unique constraint, not
// by this lock.
type Driver struct {
	checker      *Checker
	scheduler    gocron.Scheduler
	interval     time.Duration
	cycleTimeout time.Duration

	// Held for the duration of a cycle. TryLock keeps skipped invocations
	// from queueing up behind a slow cycle.
	running sync.Mutex
}

func NewDriver(c *Checker, interval, cycleTimeout time.Duration) (*Driver, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Driver{
		checker:      c,
		scheduler:    scheduler,
		interval:     interval,
		cycleTimeout: cycleTimeout,
	}, nil
}

// Start schedules the hourly check job and runs the first cycle immediately.
func (d *Driver) Start() error {
	_, err := d.scheduler.NewJob(
		gocron.DurationJob(d.interval),
		gocron.NewTask(func() {
			d.tryRunCycle(context.Background())
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	d.scheduler.Start()
	log.Info().Dur("interval", d.interval).Msg("contract expiry checker started")
	return nil
}

// Shutdown stops scheduling new cycles and waits for an in-flight cycle to
// finish. An in-flight cycle is additionally bounded by the cycle timeout,
// so shutdown cannot hang indefinitely; ledger writes are individually
// atomic, so an interrupted cycle only leaves contracts for the next run.
func (d *Driver) Shutdown() error {
	log.Info().Msg("stopping contract expiry checker")
	return d.scheduler.Shutdown()
}

// RunNow triggers one cycle synchronously, sharing the single-flight guard
// with the scheduled path. The second return value is false when a cycle
// was already running and this invocation was skipped.
func (d *Driver) RunNow(ctx context.Context) (CycleReport, bool) {
	return d.tryRunCycle(ctx)
}

func (d *Driver) tryRunCycle(ctx context.Context) (CycleReport, bool) {
	if !d.running.TryLock() {
		log.Info().Msg("check cycle already running, skipping this trigger")
		return CycleReport{}, false
	}
	defer d.running.Unlock()

	cycleCtx, cancel := context.WithTimeout(ctx, d.cycleTimeout)
	defer cancel()

	report, err := d.checker.RunCycle(cycleCtx)
	if err != nil {
		// The cycle aborted early. The process keeps running and the next
		// scheduled tick fires as usual.
		log.Error().Err(err).Msg("check cycle aborted")
	}

	return report, true
}
