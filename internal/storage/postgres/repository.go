// Package postgres implements the storage gateway on PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"

	"github.com/gkevents/server/internal/domain/events"
	"github.com/gkevents/server/internal/domain/rsvp"
	"github.com/gkevents/server/internal/domain/users"
	"github.com/gkevents/server/internal/session"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository bundles the per-table repositories over one connection pool.
type Repository struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

func NewRepository(pool *pgxpool.Pool) (*Repository, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres repository: pool is nil")
	}
	return &Repository{pool: pool}, nil
}

func (r *Repository) Users() users.Repository {
	return &UserRepository{pool: r.pool, tx: r.tx}
}

func (r *Repository) Events() events.Repository {
	return &EventRepository{pool: r.pool, tx: r.tx}
}

func (r *Repository) RSVP() rsvp.Repository {
	return &AttendanceRepository{pool: r.pool, tx: r.tx}
}

func (r *Repository) Sessions() *SessionStore {
	return &SessionStore{pool: r.pool, tx: r.tx}
}

// WithTx runs fn against a repository bound to a single transaction.
func (r *Repository) WithTx(ctx context.Context, fn func(context.Context, *Repository) error) error {
	if r.tx != nil {
		return fn(ctx, r)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	wrapped := &Repository{pool: r.pool, tx: tx}
	if err := fn(ctx, wrapped); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type UserRepository struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

type EventRepository struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

type AttendanceRepository struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

// SessionStore persists sessions in the sessions table. It implements
// session.Store.
type SessionStore struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

var _ session.Store = (*SessionStore)(nil)

type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}
