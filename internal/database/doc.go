// Package database provides connection pool management and schema bootstrap
// for the PostgreSQL bar store.
//
// The store holds a single table, dados_acoes_diario, keyed by
// (ticker, data_pregao). EnsureSchema is idempotent and runs at the start of
// every pipeline run before any instrument is processed.
package database
