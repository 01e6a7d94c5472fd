package model

import (
	"time"

	"github.com/google/uuid"
)

// CollectedAtLayout is the wall-clock format stored in datetime_coleta.
const CollectedAtLayout = "2006-01-02 15:04:05"

// -----------------------------------------------------------------------------
// Pipeline Types
// -----------------------------------------------------------------------------

// RawBar is one daily observation as returned by the provider, before
// normalization. Price and volume fields are nil when the provider sent a
// null for that session.
type RawBar struct {
	Date   time.Time // provider precision, may carry a time component
	Open   *float64
	High   *float64
	Low    *float64
	Close  *float64
	Volume *int64
}

// Record is the canonical, storage-ready representation of one ticker's one
// trading day. (Ticker, TradingDate) is the natural key; re-collecting an
// existing key replaces every non-key column.
type Record struct {
	Ticker      string
	TradingDate time.Time // midnight UTC, date-only precision
	Open        *float64
	High        *float64
	Low         *float64
	Close       *float64
	Volume      *int64
	CollectedAt string
}

// -----------------------------------------------------------------------------
// Run Reporting Types
// -----------------------------------------------------------------------------

// OutcomeStatus classifies how one ticker fared within a run.
type OutcomeStatus string

const (
	StatusLoaded      OutcomeStatus = "loaded"
	StatusNoData      OutcomeStatus = "no_data"
	StatusFetchFailed OutcomeStatus = "fetch_failed"
	StatusLoadFailed  OutcomeStatus = "load_failed"
)

// InstrumentOutcome records the result of one ticker's extract, transform
// and load pass.
type InstrumentOutcome struct {
	Ticker string
	Status OutcomeStatus
	Rows   int   // rows upserted; zero unless Status == StatusLoaded
	Err    error // nil unless Status is a failure status
}

// RunSummary describes one full pass over the instrument universe.
type RunSummary struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time

	// Fatal is set when the store could not be opened or its schema could
	// not be verified. No instruments were processed.
	Fatal bool

	// Outcomes holds one entry per ticker, in universe order.
	Outcomes []InstrumentOutcome
}

// Duration returns the wall-clock duration of the run.
func (s *RunSummary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

// Loaded returns the number of tickers whose bars were upserted.
func (s *RunSummary) Loaded() int { return s.count(StatusLoaded) }

// Empty returns the number of tickers that yielded no observations.
func (s *RunSummary) Empty() int { return s.count(StatusNoData) }

// Failed returns the number of tickers skipped due to a fetch or load failure.
func (s *RunSummary) Failed() int {
	return s.count(StatusFetchFailed) + s.count(StatusLoadFailed)
}

func (s *RunSummary) count(status OutcomeStatus) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}
