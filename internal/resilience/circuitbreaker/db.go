package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"

	"newsdesk/internal/observability/metrics"
)

// DBCircuitBreaker has the method set the postgres repositories need from
// *sql.DB, so it is passed to them in place of the pool.
type DBCircuitBreaker struct {
	cb *gobreaker.CircuitBreaker
	db *sql.DB
}

// IsHealthyDBError reports whether err proves the database answered normally.
// Constraint violations, bad input and client-side cancellations say nothing about
// database health and must not trip the breaker.
func IsHealthyDBError(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, context.Canceled) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case "22", "23", "40": // data exception, integrity violation, tx rollback
			return true
		}
	}
	return false
}

// NewDBCircuitBreaker wraps db with DBConfig.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return NewDBCircuitBreakerWithConfig(db, DBConfig())
}

func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{cb: newBreaker(cfg), db: db}
}

// QueryContext fails with gobreaker.ErrOpenState while the circuit is open.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer observe("query", time.Now())
	return execute(dcb.cb, func() (*sql.Rows, error) {
		return dcb.db.QueryContext(ctx, query, args...)
	})
}

func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer observe("exec", time.Now())
	return execute(dcb.cb, func() (sql.Result, error) {
		return dcb.db.ExecContext(ctx, query, args...)
	})
}

func observe(op string, start time.Time) {
	metrics.RecordDBQuery(op, time.Since(start))
}

// QueryRowContext bypasses the breaker: sql.Row defers its error until Scan.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return dcb.db.QueryRowContext(ctx, query, args...)
}

// BeginTx guards only the BEGIN. Statements inside run on the *sql.Tx directly.
func (dcb *DBCircuitBreaker) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return execute(dcb.cb, func() (*sql.Tx, error) {
		return dcb.db.BeginTx(ctx, opts)
	})
}

// PingContext checks connectivity through the breaker.
func (dcb *DBCircuitBreaker) PingContext(ctx context.Context) error {
	_, err := execute(dcb.cb, func() (struct{}, error) {
		return struct{}{}, dcb.db.PingContext(ctx)
	})
	return err
}

func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.State() == gobreaker.StateOpen
}

// DB returns the unguarded pool.
func (dcb *DBCircuitBreaker) DB() *sql.DB {
	return dcb.db
}

// ReportPoolStats publishes the pool gauges every interval until ctx is done.
func (dcb *DBCircuitBreaker) ReportPoolStats(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		st := dcb.db.Stats()
		metrics.UpdateDBConnectionStats(st.InUse, st.Idle)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
