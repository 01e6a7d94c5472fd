package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TableName is the daily bar table.
const TableName = "dados_acoes_diario"

// createTableSQL defines the canonical record shape. volume is BIGINT:
// daily traded volume on liquid tickers does not fit a 32-bit integer.
const createTableSQL = `
CREATE TABLE IF NOT EXISTS ` + TableName + ` (
	ticker          TEXT NOT NULL,
	data_pregao     DATE NOT NULL,
	abertura        REAL,
	alta            REAL,
	baixa           REAL,
	fechamento      REAL,
	volume          BIGINT,
	datetime_coleta TEXT,
	PRIMARY KEY (ticker, data_pregao)
)`

// EnsureSchema creates the bar table and its composite primary key if they
// do not exist yet. Idempotent, safe to call on every run.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
