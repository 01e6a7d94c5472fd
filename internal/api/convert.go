package api

import (
	"time"

	"bolsa-pipeline/internal/model"
)

// resultToBars converts one chart result into raw bars, preserving the
// provider's chronological ordering. Missing columns and null entries
// become nil fields rather than zeros.
func resultToBars(res *chartResult) []model.RawBar {
	if len(res.Timestamp) == 0 {
		return nil
	}

	var quote quoteBlock
	if len(res.Indicators.Quote) > 0 {
		quote = res.Indicators.Quote[0]
	}

	bars := make([]model.RawBar, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		bars = append(bars, model.RawBar{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   floatAt(quote.Open, i),
			High:   floatAt(quote.High, i),
			Low:    floatAt(quote.Low, i),
			Close:  floatAt(quote.Close, i),
			Volume: intAt(quote.Volume, i),
		})
	}
	return bars
}

func floatAt(col []*float64, i int) *float64 {
	if i >= len(col) {
		return nil
	}
	return col[i]
}

func intAt(col []*int64, i int) *int64 {
	if i >= len(col) {
		return nil
	}
	return col[i]
}
