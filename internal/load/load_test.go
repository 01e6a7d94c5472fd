package load

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bolsa-pipeline/internal/model"
)

// fakeDB hands out a fakeTx and records whether a transaction was opened.
type fakeDB struct {
	tx     *fakeTx
	begun  bool
	beginE error
}

func (f *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	f.begun = true
	if f.beginE != nil {
		return nil, f.beginE
	}
	return f.tx, nil
}

// fakeTx embeds pgx.Tx for interface satisfaction; only the methods the
// loader touches are implemented.
type fakeTx struct {
	pgx.Tx
	results    *fakeBatchResults
	queued     int
	committed  bool
	rolledBack bool
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	t.queued = b.Len()
	return t.results
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeBatchResults struct {
	pgx.BatchResults
	execs   int
	failAt  int // 1-based statement index that fails; 0 = never
	failErr error
	closed  bool
}

func (r *fakeBatchResults) Exec() (pgconn.CommandTag, error) {
	r.execs++
	if r.failAt != 0 && r.execs == r.failAt {
		return pgconn.CommandTag{}, r.failErr
	}
	return pgconn.CommandTag{}, nil
}

func (r *fakeBatchResults) Close() error {
	r.closed = true
	return nil
}

func someRecords(n int) []model.Record {
	recs := make([]model.Record, n)
	for i := range recs {
		recs[i] = model.Record{
			Ticker:      "PETR4.SA",
			TradingDate: time.Date(2024, 3, 1+i, 0, 0, 0, 0, time.UTC),
			CollectedAt: "2024-03-05 18:00:00",
		}
	}
	return recs
}

func TestLoad(t *testing.T) {
	tx := &fakeTx{results: &fakeBatchResults{}}
	db := &fakeDB{tx: tx}
	l := New(db, nil)

	err := l.Load(context.Background(), someRecords(5))
	require.NoError(t, err)

	assert.Equal(t, 5, tx.queued, "one upsert per record")
	assert.Equal(t, 5, tx.results.execs)
	assert.True(t, tx.results.closed)
	assert.True(t, tx.committed)
}

func TestLoad_EmptyIsNoOp(t *testing.T) {
	db := &fakeDB{}
	l := New(db, nil)

	require.NoError(t, l.Load(context.Background(), nil))
	require.NoError(t, l.Load(context.Background(), []model.Record{}))
	assert.False(t, db.begun, "empty input must not touch the database")
}

func TestLoad_BatchRollsBackOnFailure(t *testing.T) {
	tx := &fakeTx{results: &fakeBatchResults{
		failAt:  3,
		failErr: errors.New("value too long for type"),
	}}
	db := &fakeDB{tx: tx}
	l := New(db, nil)

	err := l.Load(context.Background(), someRecords(5))
	require.Error(t, err)

	assert.False(t, tx.committed, "a failed batch must never commit")
	assert.True(t, tx.rolledBack)
	assert.True(t, tx.results.closed)
	assert.Equal(t, 3, tx.results.execs, "execution stops at the failing statement")
}

func TestLoad_BeginFailure(t *testing.T) {
	db := &fakeDB{beginE: errors.New("connection closed")}
	l := New(db, nil)

	err := l.Load(context.Background(), someRecords(1))
	require.Error(t, err)
}
