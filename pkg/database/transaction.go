package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/shared/apperror"
)

// Querier is the statement surface shared by *pgxpool.Pool, pgx.Tx and
// pgxmock. Repositories take a Querier so the same query code runs inside
// or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner opens transactions with explicit options.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// Pool is what repositories need from the connection pool.
type Pool interface {
	Querier
	TxBeginner
}

// TxFunc là function type được execute trong transaction
type TxFunc func(ctx context.Context, tx pgx.Tx) error

// DefaultTxOptions is READ COMMITTED read-write. Guarded deletes and book
// writes take row locks explicitly, so a stronger level is not required.
var DefaultTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.ReadCommitted,
	AccessMode: pgx.ReadWrite,
}

// TxRunner executes functions inside short-lived transactions.
//
// Flow per attempt:
//
//	Begin -> fn(tx) -> Commit
//	any error, panic or cancelled context -> Rollback
//
// A serialization failure or deadlock restarts fn from scratch while
// attempts remain; after that the caller gets TRANSACTION_CONFLICT.
type TxRunner struct {
	db          TxBeginner
	opts        pgx.TxOptions
	maxAttempts int
}

// NewTxRunner creates a runner. maxAttempts < 1 is treated as 1, which
// means conflicts fail immediately without a retry.
func NewTxRunner(db TxBeginner, maxAttempts int) *TxRunner {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &TxRunner{db: db, opts: DefaultTxOptions, maxAttempts: maxAttempts}
}

// WithTransaction wraps fn in a transaction: auto rollback on error, auto
// commit on success.
func (r *TxRunner) WithTransaction(ctx context.Context, fn TxFunc) error {
	var err error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err = r.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return Translate(err)
		}
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", r.maxAttempts).
			Msg("transaction conflict")
	}
	return apperror.ErrTransactionConflict.Wrap(err)
}

func (r *TxRunner) runOnce(ctx context.Context, fn TxFunc) (err error) {
	tx, err := r.db.BeginTx(ctx, r.opts)
	if err != nil {
		return txError(ctx, fmt.Errorf("failed to begin transaction: %w", err))
	}

	// Rollback uses a context that survives caller cancellation, otherwise
	// the driver would drop the connection instead of rolling back cleanly.
	rollbackCtx := context.WithoutCancel(ctx)
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(rollbackCtx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(rollbackCtx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				log.Error().Err(rbErr).Msg("transaction rollback failed")
			}
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	// Caller went away before commit: nothing may be applied.
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = apperror.ErrOperationCanceled.Wrap(ctxErr)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		err = txError(ctx, fmt.Errorf("failed to commit transaction: %w", err))
		return err
	}
	return nil
}

// txError types a begin or commit failure. Conflicts keep their SQLSTATE in
// the chain so WithTransaction still retries them.
func txError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return apperror.ErrOperationCanceled.Wrap(err)
	}
	return Translate(err)
}

// WithTransactionResult wraps function có return value trong transaction
func WithTransactionResult[T any](ctx context.Context, r *TxRunner, fn func(context.Context, pgx.Tx) (T, error)) (T, error) {
	var result T
	err := r.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var fnErr error
		result, fnErr = fn(ctx, tx)
		return fnErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
