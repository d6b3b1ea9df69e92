// Package checker drives the catalog lookup and version comparison over a
// batch of installed software.
package checker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

// Lookuper finds the latest catalog version of a software name.
type Lookuper interface {
	Lookup(ctx context.Context, softwareName string) (models.CatalogMatch, error)
}

// ProgressFunc receives one update per item, before the item is looked up.
type ProgressFunc func(models.ProgressState)

// State of a batch run.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
)

// Runner checks items one at a time, pausing between them so remote
// catalogs are not rate limited.
type Runner struct {
	lookup Lookuper
	delay  time.Duration
	logger *zap.Logger
	now    func() time.Time

	runMu sync.Mutex // serializes RunBatch
	mu    sync.RWMutex
	state State
}

// NewRunner creates a runner that waits delay between consecutive items.
func NewRunner(lookup Lookuper, delay time.Duration, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay < 0 {
		delay = 0
	}
	return &Runner{
		lookup: lookup,
		delay:  delay,
		logger: logger.Named("checker"),
		now:    time.Now,
		state:  StateIdle,
	}
}

// State returns the state of the current or last batch.
func (r *Runner) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

// Delay returns the pause between items.
func (r *Runner) Delay() time.Duration {
	return r.delay
}

// RunBatch checks every item and returns exactly one result per item, in
// input order. A failing or panicking item yields a result with status
// error and the batch continues. When ctx is cancelled the remaining items
// are still reported, each with status error.
func (r *Runner) RunBatch(ctx context.Context, items []models.SoftwareItem, onProgress ProgressFunc) []models.CheckResult {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	r.setState(StateRunning)
	defer r.setState(StateCompleted)

	total := len(items)
	results := make([]models.CheckResult, 0, total)
	r.logger.Info("Starting batch", zap.Int("total", total), zap.Duration("delay", r.delay))

	for i, item := range items {
		r.report(onProgress, models.ProgressState{
			Current:      i + 1,
			Total:        total,
			SoftwareName: item.Name,
			Percentage:   Percentage(i+1, total),
		})

		res := r.checkItem(ctx, item)
		results = append(results, res)
		r.logger.Debug("Checked software",
			zap.String("software", item.Name),
			zap.String("status", string(res.Status)))

		if i < total-1 {
			r.wait(ctx)
		}
	}

	stats := Statistics(results)
	r.logger.Info("Batch finished",
		zap.Int("total", stats.Total),
		zap.Int("outdated", stats.Outdated),
		zap.Int("not_found", stats.NotFound),
		zap.Int("errors", stats.Error))
	return results
}

// report invokes the progress callback. A panicking callback is logged and
// does not interrupt the batch.
func (r *Runner) report(onProgress ProgressFunc, p models.ProgressState) {
	if onProgress == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Panic in progress callback",
				zap.String("software", p.SoftwareName),
				zap.Any("panic", rec))
		}
	}()
	onProgress(p)
}

// wait pauses for the configured delay or until ctx is done.
func (r *Runner) wait(ctx context.Context) {
	if r.delay <= 0 || ctx.Err() != nil {
		return
	}
	timer := time.NewTimer(r.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// checkItem isolates one item: errors and panics become an error result.
func (r *Runner) checkItem(ctx context.Context, item models.SoftwareItem) (res models.CheckResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Panic while checking software",
				zap.String("software", item.Name),
				zap.Any("panic", rec))
			res = ErrorResult(item, fmt.Errorf("%v", rec), r.now())
		}
	}()

	if err := ctx.Err(); err != nil {
		return ErrorResult(item, err, r.now())
	}

	match, err := r.lookup.Lookup(ctx, item.Name)
	if err != nil {
		r.logger.Warn("Lookup failed", zap.String("software", item.Name), zap.Error(err))
		return ErrorResult(item, err, r.now())
	}
	return BuildResult(item, match, r.now())
}

// Percentage rounds current/total to the nearest whole percent.
func Percentage(current, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(current) / float64(total) * 100))
}

// IsCancellation reports whether err comes from a cancelled or expired context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Run is RunBatch wrapped into a Report with statistics and timings.
func (r *Runner) Run(ctx context.Context, items []models.SoftwareItem, onProgress ProgressFunc) Report {
	started := r.now()
	results := r.RunBatch(ctx, items, onProgress)
	return Report{
		Results:    results,
		Statistics: Statistics(results),
		StartedAt:  started,
		FinishedAt: r.now(),
	}
}
