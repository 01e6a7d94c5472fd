package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bolsa-pipeline/internal/model"
	"bolsa-pipeline/internal/transform"
)

// Fetcher yields one instrument's raw bars, or (nil, nil) for an empty window.
type Fetcher interface {
	Fetch(ctx context.Context, ticker string) ([]model.RawBar, error)
}

// Store is the persistence surface one run needs. Close releases the
// underlying connection exactly once.
type Store interface {
	Load(ctx context.Context, records []model.Record) error
	Close()
}

// StoreOpener acquires the store for one run, connecting and verifying the
// schema. An error here is fatal to the run.
type StoreOpener func(ctx context.Context) (Store, error)

// Runner drives extract -> transform -> load across the instrument universe.
type Runner struct {
	tickers []string
	open    StoreOpener
	fetcher Fetcher
	logger  *slog.Logger
	now     func() time.Time
}

// NewRunner creates a Runner over the given universe, in order.
func NewRunner(tickers []string, open StoreOpener, fetcher Fetcher, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		tickers: tickers,
		open:    open,
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

// Run performs one full pass over the universe.
//
// Instruments are processed sequentially and independently: an empty or
// failed stage records an outcome and the loop moves on unconditionally.
// Only a store that cannot be opened aborts the run, before any instrument
// is processed; in that case the returned summary is marked fatal and the
// error is non-nil.
func (r *Runner) Run(ctx context.Context) (*model.RunSummary, error) {
	summary := &model.RunSummary{
		RunID:     uuid.New(),
		StartedAt: r.now(),
	}

	r.logger.Info("run starting",
		"run_id", summary.RunID,
		"universe", len(r.tickers),
	)

	store, err := r.open(ctx)
	if err != nil {
		summary.Fatal = true
		summary.FinishedAt = r.now()
		r.logger.Error("store unavailable, aborting run",
			"run_id", summary.RunID,
			"error", err,
		)
		return summary, fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	for _, ticker := range r.tickers {
		summary.Outcomes = append(summary.Outcomes, r.processOne(ctx, store, ticker))
	}

	summary.FinishedAt = r.now()
	r.logger.Info("run finished",
		"run_id", summary.RunID,
		"loaded", summary.Loaded(),
		"empty", summary.Empty(),
		"failed", summary.Failed(),
		"duration", summary.Duration(),
	)
	return summary, nil
}

// processOne runs one instrument through the three stages. Failures stay
// inside the returned outcome; they never abort the caller's loop.
func (r *Runner) processOne(ctx context.Context, store Store, ticker string) model.InstrumentOutcome {
	bars, err := r.fetcher.Fetch(ctx, ticker)
	if err != nil {
		return model.InstrumentOutcome{Ticker: ticker, Status: model.StatusFetchFailed, Err: err}
	}
	if len(bars) == 0 {
		r.logger.Warn("skipping ticker, no data", "ticker", ticker)
		return model.InstrumentOutcome{Ticker: ticker, Status: model.StatusNoData}
	}

	r.logger.Info("transforming bars", "ticker", ticker, "bars", len(bars))
	records := transform.Transform(bars, ticker, r.now())

	if err := store.Load(ctx, records); err != nil {
		r.logger.Error("load failed, batch rolled back", "ticker", ticker, "error", err)
		return model.InstrumentOutcome{Ticker: ticker, Status: model.StatusLoadFailed, Err: err}
	}

	return model.InstrumentOutcome{Ticker: ticker, Status: model.StatusLoaded, Rows: len(records)}
}
