// Package extract retrieves raw daily bars for one instrument at a time.
//
// The extractor distinguishes two non-success outcomes: an empty window
// (the provider answered, but had nothing for the symbol) and a failure
// (the provider could not answer). Callers skip the instrument either way
// but the two are logged and reported differently.
package extract

import (
	"context"
	"log/slog"

	"bolsa-pipeline/internal/model"
)

// BarSource fetches a symbol's recent daily bars from the provider.
type BarSource interface {
	DailyBars(ctx context.Context, symbol string, days int) ([]model.RawBar, error)
}

// Extractor fetches the lookback window of raw bars per instrument.
type Extractor struct {
	source   BarSource
	lookback int
	logger   *slog.Logger
}

// New creates an Extractor reading lookbackDays sessions per fetch.
func New(source BarSource, lookbackDays int, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		source:   source,
		lookback: lookbackDays,
		logger:   logger,
	}
}

// Fetch returns the raw bars for ticker. (nil, nil) means the provider
// responded with an empty window; a non-nil error means the single fetch
// attempt failed. No retries happen here.
func (e *Extractor) Fetch(ctx context.Context, ticker string) ([]model.RawBar, error) {
	e.logger.Info("fetching bars", "ticker", ticker, "lookback_days", e.lookback)

	bars, err := e.source.DailyBars(ctx, ticker, e.lookback)
	if err != nil {
		e.logger.Error("fetch failed", "ticker", ticker, "error", err)
		return nil, err
	}
	if len(bars) == 0 {
		e.logger.Warn("no bars returned", "ticker", ticker)
		return nil, nil
	}

	return bars, nil
}
