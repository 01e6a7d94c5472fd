// Package api provides the REST client for the market-data provider.
//
// The client speaks the Yahoo Finance v8 chart endpoint and exposes daily
// OHLCV bars over a short lookback window. Every call is a single attempt:
// transient provider failures surface to the caller, which decides whether
// the instrument is skipped.
package api
