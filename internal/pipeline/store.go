package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"bolsa-pipeline/internal/config"
	"bolsa-pipeline/internal/database"
	"bolsa-pipeline/internal/load"
	"bolsa-pipeline/internal/model"
)

// PostgresOpener returns a StoreOpener that connects the PostgreSQL bar
// store and verifies its schema. Connection and schema failures surface to
// Run as fatal.
func PostgresOpener(cfg config.DBConfig, logger *slog.Logger) StoreOpener {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context) (Store, error) {
		pool, err := database.Connect(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect: %w", err)
		}
		if err := database.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("schema verified", "table", database.TableName)
		return &pgStore{pool: pool, loader: load.New(pool, logger)}, nil
	}
}

type pgStore struct {
	pool   *pgxpool.Pool
	loader *load.Loader
}

func (s *pgStore) Load(ctx context.Context, records []model.Record) error {
	return s.loader.Load(ctx, records)
}

func (s *pgStore) Close() {
	s.pool.Close()
}
