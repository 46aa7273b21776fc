package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/saharsh121/Venue-Finder/internal/domain"
	"github.com/saharsh121/Venue-Finder/internal/repository"
	"github.com/saharsh121/Venue-Finder/internal/service"
	"github.com/saharsh121/Venue-Finder/pkg/cache"
	"github.com/saharsh121/Venue-Finder/pkg/logger"
	"github.com/saharsh121/Venue-Finder/pkg/telemetry"
)

// ReconcileWorkerConfig holds configuration for the reconcile worker
type ReconcileWorkerConfig struct {
	// Schedule is a standard cron expression
	Schedule string
	// CycleBudget bounds the execution time of a single cycle
	CycleBudget time.Duration
}

// DefaultReconcileWorkerConfig returns default worker configuration:
// every minute, 30 second budget
func DefaultReconcileWorkerConfig() *ReconcileWorkerConfig {
	return &ReconcileWorkerConfig{
		Schedule:    "* * * * *",
		CycleBudget: 30 * time.Second,
	}
}

// ReconcileWorkerStats holds runtime statistics for the worker
type ReconcileWorkerStats struct {
	IsRunning        bool
	TotalCycles      int64
	TotalSlotUpdates int64
	TotalErrors      int64
	LastCycleTime    time.Time
	LastUpdateCount  int64
}

// ReconcileWorker periodically advances event phases and recomputes venue
// slot occupancy from the set of active events. It is the only writer of
// event phases and slot statuses; request-triggered operations interleave
// freely and the next cycle self-corrects any staleness they observe.
type ReconcileWorker struct {
	eventRepo repository.EventRepository
	slotRepo  repository.VenueSlotRepository
	cache     cache.Store
	config    *ReconcileWorkerConfig

	cron *cron.Cron
	now  func() time.Time

	mu               sync.Mutex
	running          bool
	totalCycles      int64
	totalSlotUpdates int64
	totalErrors      int64
	lastCycleTime    time.Time
	lastUpdateCount  int64

	cyclesCounter  *telemetry.Counter
	updatesCounter *telemetry.Counter
	errorsCounter  *telemetry.Counter
	cycleDuration  *telemetry.Histogram
}

// NewReconcileWorker creates a new reconcile worker. store may be nil,
// which disables availability cache flushing.
func NewReconcileWorker(
	eventRepo repository.EventRepository,
	slotRepo repository.VenueSlotRepository,
	store cache.Store,
	config *ReconcileWorkerConfig,
) *ReconcileWorker {
	if config == nil {
		config = DefaultReconcileWorkerConfig()
	}

	w := &ReconcileWorker{
		eventRepo: eventRepo,
		slotRepo:  slotRepo,
		cache:     store,
		config:    config,
		now:       time.Now,
	}

	w.cyclesCounter, _ = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "reconcile_cycles_total",
		Description: "Completed reconcile cycles",
		Unit:        "1",
	})
	w.updatesCounter, _ = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "reconcile_slot_updates_total",
		Description: "Venue slot status writes performed by reconcile cycles",
		Unit:        "1",
	})
	w.errorsCounter, _ = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "reconcile_errors_total",
		Description: "Errors encountered during reconcile cycles",
		Unit:        "1",
	})
	w.cycleDuration, _ = telemetry.NewHistogram(telemetry.MetricOpts{
		Name:        "reconcile_cycle_duration_seconds",
		Description: "Wall-clock duration of reconcile cycles",
		Unit:        "s",
	})

	return w
}

// Start schedules the worker. Ticks that fire while the previous cycle is
// still running are skipped, so cycles never overlap.
func (w *ReconcileWorker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("reconcile worker already running")
	}

	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cronLogger{}),
	))
	if _, err := c.AddFunc(w.config.Schedule, w.tick); err != nil {
		return fmt.Errorf("invalid reconcile schedule %q: %w", w.config.Schedule, err)
	}

	w.cron = c
	w.running = true
	c.Start()

	logger.Info("reconcile worker started",
		zap.String("schedule", w.config.Schedule),
		zap.Duration("cycle_budget", w.config.CycleBudget),
	)
	return nil
}

// Stop halts the schedule and waits for an in-flight cycle to finish
func (w *ReconcileWorker) Stop() {
	w.mu.Lock()
	c := w.cron
	w.cron = nil
	w.running = false
	w.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
		logger.Info("reconcile worker stopped")
	}
}

// GetStats returns a snapshot of the worker's statistics
func (w *ReconcileWorker) GetStats() *ReconcileWorkerStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return &ReconcileWorkerStats{
		IsRunning:        w.running,
		TotalCycles:      w.totalCycles,
		TotalSlotUpdates: w.totalSlotUpdates,
		TotalErrors:      w.totalErrors,
		LastCycleTime:    w.lastCycleTime,
		LastUpdateCount:  w.lastUpdateCount,
	}
}

// tick runs one cycle from the scheduler. The cycle's error, if any, has
// already been logged; the scheduler itself never fails.
func (w *ReconcileWorker) tick() {
	_ = w.RunCycle(context.Background())
}

// RunCycle executes one reconciliation cycle: advance event phases from a
// single clock sample, then derive every slot's status from the active
// event set and write only the changed rows. A fetch failure aborts the
// cycle; a single slot write failure is logged and skipped.
func (w *ReconcileWorker) RunCycle(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, w.config.CycleBudget)
	defer cancel()

	// One clock sample for every decision in this cycle.
	now := w.now()
	started := time.Now()

	err := w.reconcile(ctx, now)

	elapsed := time.Since(started)
	w.cycleDuration.Record(ctx, elapsed.Seconds())

	if err != nil {
		w.mu.Lock()
		w.totalErrors++
		w.mu.Unlock()
		w.errorsCounter.Inc(context.Background())
		logger.Error("reconcile cycle aborted",
			zap.Error(err),
			zap.Duration("elapsed", elapsed),
		)
		return err
	}

	return nil
}

func (w *ReconcileWorker) reconcile(ctx context.Context, now time.Time) error {
	activated, err := w.eventRepo.ActivateDue(ctx, now)
	if err != nil {
		return fmt.Errorf("activating due events: %w", err)
	}
	completed, err := w.eventRepo.CompleteElapsed(ctx, now)
	if err != nil {
		return fmt.Errorf("completing elapsed events: %w", err)
	}

	active, err := w.eventRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("listing active events: %w", err)
	}
	slots, err := w.slotRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("listing venue slots: %w", err)
	}

	var updates, failures int64
	for _, slot := range slots {
		if ctx.Err() != nil {
			logger.Warn("reconcile cycle budget exceeded, deferring remaining slots",
				zap.Int64("updates_so_far", updates),
			)
			break
		}

		target := domain.DeriveStatus(slot, active)
		if target == slot.Status {
			continue
		}
		if err := w.slotRepo.UpdateStatus(ctx, slot.ID, target); err != nil {
			// Per-row isolation: the rest of the sweep proceeds.
			failures++
			logger.Error("failed to update venue slot status",
				zap.Int64("slot_id", slot.ID),
				zap.String("target_status", string(target)),
				zap.Error(err),
			)
			continue
		}
		updates++
	}

	if updates > 0 && w.cache != nil {
		// The cycle context may already be exhausted; flushing stale
		// availability entries still matters.
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := w.cache.FlushPrefix(flushCtx, service.AvailabilityCachePrefix); err != nil {
			logger.Warn("failed to flush availability cache", zap.Error(err))
		}
		flushCancel()
	}

	w.mu.Lock()
	w.totalCycles++
	w.totalSlotUpdates += updates
	w.totalErrors += failures
	w.lastCycleTime = now
	w.lastUpdateCount = updates
	w.mu.Unlock()

	w.cyclesCounter.Inc(context.Background())
	w.updatesCounter.Add(context.Background(), updates)
	if failures > 0 {
		w.errorsCounter.Add(context.Background(), failures)
	}

	logger.Debug("reconcile cycle finished",
		zap.Int64("activated", activated),
		zap.Int64("completed", completed),
		zap.Int("active_events", len(active)),
		zap.Int64("slot_updates", updates),
		zap.Int64("slot_failures", failures),
	)
	return nil
}

// cronLogger adapts the application logger to the cron.Logger interface
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Info(msg, zap.Any("details", keysAndValues))
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error(msg, zap.Error(err), zap.Any("details", keysAndValues))
}
