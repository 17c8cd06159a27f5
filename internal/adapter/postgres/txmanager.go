package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Beginner starts transactions. *pgxpool.Pool satisfies it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// defaultTxAttempts bounds how often a transaction that lost a deadlock or
// serialization conflict is started again.
const defaultTxAttempts = 3

// TxManager runs callbacks in a transaction carried by the context; repos
// pick it up through QuerierFromCtx. Nested RunInTx calls are not supported:
// an inner call starts a second, independent transaction.
type TxManager struct {
	db       Beginner
	attempts int
}

// NewTxManager creates a new TxManager.
func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db, attempts: defaultTxAttempts}
}

// RunInTx runs fn in a Read Committed transaction and commits when fn
// returns nil. An error from fn rolls back and is returned; a panic rolls
// back and is re-raised.
//
// Two bulk imports touching the same keys can deadlock each other. When
// PostgreSQL aborts the transaction for a deadlock (40P01) or serialization
// failure (40001), fn runs again in a fresh transaction, so fn must only
// derive its results from what it reads inside that transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		err = m.runOnce(ctx, fn)
		if err == nil || !retryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return fmt.Errorf("transaction failed after %d attempts: %w", m.attempts, err)
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40P01" || pgErr.Code == "40001"
}
