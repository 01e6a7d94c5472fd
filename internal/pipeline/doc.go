// Package pipeline orchestrates the extract, transform and load stages
// across the configured instrument universe.
//
// One run processes tickers sequentially, one at a time. Failures are
// isolated per instrument: each ticker's batch commits or rolls back on its
// own, so a later failure can never undo earlier durable rows. The only
// fatal condition is a store that cannot be opened, which aborts the run
// before any instrument is touched.
package pipeline
