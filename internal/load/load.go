// Package load persists canonical records with last-write-wins upserts.
package load

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"bolsa-pipeline/internal/database"
	"bolsa-pipeline/internal/model"
)

// upsertSQL inserts one bar, overwriting every non-key column when the
// (ticker, data_pregao) key already exists.
const upsertSQL = `
INSERT INTO ` + database.TableName + `
	(ticker, data_pregao, abertura, alta, baixa, fechamento, volume, datetime_coleta)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (ticker, data_pregao) DO UPDATE SET
	abertura        = EXCLUDED.abertura,
	alta            = EXCLUDED.alta,
	baixa           = EXCLUDED.baixa,
	fechamento      = EXCLUDED.fechamento,
	volume          = EXCLUDED.volume,
	datetime_coleta = EXCLUDED.datetime_coleta`

// DB is the subset of pgxpool.Pool the loader needs.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Loader upserts canonical records into the bar store.
type Loader struct {
	db     DB
	logger *slog.Logger
}

// New creates a Loader writing through db.
func New(db DB, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{db: db, logger: logger}
}

// Load upserts one instrument's records inside a single transaction.
//
// Empty input is a successful no-op with no database interaction. Any
// statement failure rolls back the whole batch: rows committed by earlier
// Load calls stay untouched, the batch is the unit of atomicity.
func (l *Loader) Load(ctx context.Context, records []model.Record) error {
	if len(records) == 0 {
		l.logger.Warn("no records to load")
		return nil
	}

	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) // no-op once committed

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(upsertSQL,
			r.Ticker, r.TradingDate, r.Open, r.High, r.Low,
			r.Close, r.Volume, r.CollectedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range records {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("upsert bar %s %s: %w",
				records[i].Ticker, records[i].TradingDate.Format("2006-01-02"), err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	l.logger.Info("bars loaded",
		"ticker", records[0].Ticker,
		"rows", len(records),
	)
	return nil
}
