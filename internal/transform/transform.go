// Package transform normalizes raw provider bars into canonical records.
package transform

import (
	"time"

	"bolsa-pipeline/internal/model"
)

// Transform converts one instrument's raw bars into canonical records,
// preserving input order.
//
// The collection timestamp is captured once per call, so every record from
// a single extraction carries identical provenance. Nil or empty input
// yields nil with no side effects. Absent price or volume observations
// stay nil, never zero.
func Transform(bars []model.RawBar, ticker string, now time.Time) []model.Record {
	if len(bars) == 0 {
		return nil
	}

	collectedAt := now.Format(model.CollectedAtLayout)

	records := make([]model.Record, 0, len(bars))
	for _, b := range bars {
		records = append(records, model.Record{
			Ticker:      ticker,
			TradingDate: truncateToDay(b.Date),
			Open:        b.Open,
			High:        b.High,
			Low:         b.Low,
			Close:       b.Close,
			Volume:      b.Volume,
			CollectedAt: collectedAt,
		})
	}
	return records
}

// truncateToDay drops any time-of-day component, keeping calendar-date
// precision at UTC midnight.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
